// Package config loads typed settings from the environment.
//
// Values are read with github.com/caarlos0/env/v11 from the process
// environment, optionally primed from .env files through
// github.com/joho/godotenv. Variables already set in the environment win
// over values from files.
//
//	type Settings struct {
//		Env      string `env:"STRKIT_ENV" envDefault:"development"`
//		LogLevel string `env:"STRKIT_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
//
// Each configuration type is parsed once and cached for the life of the
// process. ResetCache forgets cached values, which is mostly useful in tests.
package config
