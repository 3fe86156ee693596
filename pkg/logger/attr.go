package logger

import (
	"log/slog"
	"strconv"
)

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Name records a symbol or group name under the key "name".
func Name(name string) slog.Attr {
	return slog.String("name", name)
}

// Attempts records how many candidates were tried under the key "attempts".
func Attempts(n int) slog.Attr {
	return slog.Int("attempts", n)
}

// Registry records the registry backend under the key "registry".
func Registry(kind string) slog.Attr {
	return slog.String("registry", kind)
}

// Fingerprint records a content fingerprint under the key "fingerprint".
func Fingerprint(fp string) slog.Attr {
	return slog.String("fingerprint", fp)
}
