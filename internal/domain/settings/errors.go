package settings

import "errors"

var ErrSettingsNotFound = errors.New("app settings not found")
