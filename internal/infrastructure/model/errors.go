package model

import "errors"

// ErrInvalidArtifact - артефакт модели повреждён или неполон
var ErrInvalidArtifact = errors.New("invalid model artifact")
