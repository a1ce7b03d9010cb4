package dbg

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Random readable names, which are much easier to tell apart in logs than
// pointers or counters.

func init() {
	// Make names nondeterministic to remind the user that the same name
	// doesn't refer to the same thing between runs.
	petname.NonDeterministicMode()
}

func NewLabel() string {
	// Casers are stateful, so they can't be shared between goroutines.
	title := cases.Title(language.English)
	return fmt.Sprintf("%s%s", title.String(petname.Adjective()), title.String(petname.Name()))
}
