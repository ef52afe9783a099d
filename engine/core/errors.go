package core

import (
	"errors"
)

var (
	ErrNothingSelected    = errors.New("nothing selected, please select the base mesh(es)")
	ErrTooManySelected    = errors.New("too many objects selected, please select only one mesh")
	ErrSourceNameRequired = errors.New("source name required, enter the asset name as it is spelled in the UE4 content browser")
	ErrDataFileMissing    = errors.New("no data file exists, generate one using the export tool")
	ErrNoAssetsSelected   = errors.New("nothing selected in the content browser, please select the mesh(es) to populate")
	ErrInvalidRecord      = errors.New("invalid transform record")
)
