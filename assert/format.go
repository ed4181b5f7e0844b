package assert

import "fmt"

func formatMsg(format string, args ...interface{}) string {
	return "assertion failed: " + fmt.Sprintf(format, args...)
}
