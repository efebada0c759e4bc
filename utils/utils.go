package utils

// RotationCW is the clockwise quarter-turn transform used when rotating
// piece offsets inside their bounding box.
var RotationCW = [2][2]int{{0, -1}, {1, 0}}

func TransformVector(tMatrix [2][2]int, x int, y int) (int, int) {
	return tMatrix[0][0]*x + tMatrix[0][1]*y, tMatrix[1][0]*x + tMatrix[1][1]*y
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// CommandFromString maps the key identifiers sent by clients to the
// internal command names. Unknown identifiers map to the empty string.
func CommandFromString(command string) string {
	switch command {
	case "ArrowLeft":
		return "left"
	case "ArrowRight":
		return "right"
	case "ArrowUp":
		return "rotate"
	case "ArrowDown":
		return "soft"
	case "Space":
		return "hard"
	case "KeyP":
		return "pause"
	}
	return ""
}
