package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/you-not-fish/minipl/internal/eval"
)

// Report writes err for a user on w: a "<stage> error:" tag and the
// message. A failed assertion prints only its message. With colored
// set, the tag is red.
func Report(w io.Writer, err error, colored bool) {
	if err == nil {
		return
	}
	var assertErr *eval.AssertionError
	if errors.As(err, &assertErr) {
		fmt.Fprintln(w, assertErr.Error())
		return
	}

	tag := color.New(color.FgRed, color.Bold)
	if colored {
		tag.EnableColor()
	} else {
		tag.DisableColor()
	}

	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		tag.Fprint(w, "error:")
		fmt.Fprintf(w, " %v\n", err)
		return
	}
	tag.Fprintf(w, "%s error:", stageErr.Stage)
	fmt.Fprintf(w, " %v\n", stageErr.Err)
}
