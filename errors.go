package flowlayout

import (
	"errors"

	"github.com/grindlemire/go-flowlayout/internal/model"
)

var (
	// ErrNilDataSource is returned by New when no DataSource is given.
	ErrNilDataSource = errors.New("flowlayout: nil data source")

	// ErrInvalidOption wraps every option validation failure.
	ErrInvalidOption = errors.New("flowlayout: invalid option")

	// ErrIndexOutOfRange is returned when a batch edit addresses a section or
	// item that does not exist.
	ErrIndexOutOfRange = model.ErrIndexOutOfRange

	// ErrCountMismatch is returned when cached counts disagree with the
	// DataSource after a batch edit.
	ErrCountMismatch = model.ErrCountMismatch
)
