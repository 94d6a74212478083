package wizard

import "errors"

var ErrWrongStep = errors.New("action not available on this step")
var ErrProfileIncomplete = errors.New("first name, last name and email are required")
var ErrNoSlotsSelected = errors.New("at least one shift must be selected")
var ErrNotSaved = errors.New("could not save registration")
