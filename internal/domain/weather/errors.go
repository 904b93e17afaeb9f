package weather

import "errors"

var ErrProviderUnavailable = errors.New("weather provider unavailable")
