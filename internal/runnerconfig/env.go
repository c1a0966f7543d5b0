package runnerconfig

import (
	"os"

	"github.com/joho/godotenv"
)

// Env is process-level configuration — paths and installation locations
// that don't vary per query, loaded from the environment (optionally
// seeded from a local .env file, matching codeready-toolchain-tarsy's use
// of godotenv for test/dev environment loading).
type Env struct {
	// ISLPrefix points at the integer-set library's install tree; see
	// oracle.NewSubprocess, which resolves "$ISLPrefix/islsolve".
	ISLPrefix string
}

// LoadEnv loads dotenvPath (if it exists; a missing file is not an error,
// matching godotenv.Load's common use as a best-effort convenience) into
// the process environment, then reads Env fields from os.Getenv.
func LoadEnv(dotenvPath string) (Env, error) {
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			if err := godotenv.Load(dotenvPath); err != nil {
				return Env{}, err
			}
		}
	}

	return Env{ISLPrefix: os.Getenv("ISL_PREFIX")}, nil
}
