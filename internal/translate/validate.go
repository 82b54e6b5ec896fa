package translate

import (
	"fmt"
	"os"
)

// DefaultCloseFrom is the only accepted -C value. run0 exposes no
// equivalent control over inherited file descriptors.
const DefaultCloseFrom = 3

// Validate checks that every requested legacy flag can be translated.
// Rules run in a fixed order and the first violation wins, so each
// failure message identifies exactly one offending feature.
//
// Unsupported features (rules before the background check) will never be
// translated; unimplemented ones (the remainder) could plausibly gain
// support later, and their wording says so.
//
// lookupEnv reads the process environment; nil means os.LookupEnv.
func Validate(r *Request, lookupEnv func(string) (string, bool)) error {
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}

	// Unsupported

	if r.Askpass {
		if _, ok := lookupEnv("SUDO_ASKPASS"); ok {
			return fmt.Errorf("custom askpass programs are unsupported")
		}
	}

	if r.CloseFrom != DefaultCloseFrom {
		return fmt.Errorf("close-from must be exactly 3 or unspecified, was %d", r.CloseFrom)
	}

	if r.Edit {
		return fmt.Errorf("editing is not supported")
	}

	if r.List {
		return fmt.Errorf("listing privileges is unsupported")
	}

	if r.OtherUserSet {
		return fmt.Errorf("listing privileges of other users is unsupported")
	}

	if r.NoUpdate {
		return fmt.Errorf("cached credentials are always updated")
	}

	if r.PreserveGroups {
		return fmt.Errorf("cannot preserve groups")
	}

	if r.Stdin {
		return fmt.Errorf("cannot use stdin/stderr for the password prompt")
	}

	if r.PromptSet {
		return fmt.Errorf("password prompt cannot be overridden")
	}
	if _, ok := lookupEnv("SUDO_PROMPT"); ok {
		return fmt.Errorf("password prompt cannot be overridden")
	}

	if r.Validate {
		return fmt.Errorf("cannot validate credentials")
	}

	if r.PreserveAllEnv {
		return fmt.Errorf("preserving the entire environment is unsupported")
	}

	// Unimplemented

	if r.Background {
		return fmt.Errorf("cannot run commands in the background")
	}

	if r.RemoveStamp || r.ResetStamp {
		return fmt.Errorf("cannot alter sudo timestamps")
	}

	if r.ChrootSet {
		return fmt.Errorf("chroot is unimplemented")
	}

	if r.TimeoutSet {
		return fmt.Errorf("command timeouts are unimplemented")
	}

	return nil
}
