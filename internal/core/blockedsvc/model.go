package blockedsvc

import (
	"phishx/internal/core/appliance"
	perrors "phishx/internal/errors"
)

const (
	LoadFailedMessage = "Failed to fetch blocked services. Please check your connection and credentials."
	SaveFailedMessage = "Failed to save blocked services settings."
)

// ErrNotLoaded is returned by Toggle and Save until a Load has succeeded. The
// appliance's enabled list is unknown until then, so a save would replace it
// blindly.
var ErrNotLoaded = perrors.New(perrors.KindConflict, "blocked services not loaded")

// State is what the editor shows: the catalog plus the working set.
type State struct {
	Services []appliance.BlockedService `json:"services"`
	Enabled  []string                   `json:"enabled"`
	Loaded   bool                       `json:"loaded"`
	Dirty    bool                       `json:"dirty"`
	Saving   bool                       `json:"saving"`
	Saved    bool                       `json:"saved"`
	Error    string                     `json:"error,omitempty"`
}
