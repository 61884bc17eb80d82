package debug

import (
	"fmt"
	"os"
)

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
