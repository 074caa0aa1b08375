package flags

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestConfig_InitConfigFile_EnvVars(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{
			name:     "env var value with extra white space",
			value:    "  /custom/path/bruno-doc.toml  ",
			expected: "/custom/path/bruno-doc.toml",
		},
		{
			name:     "env var missing",
			value:    "",
			expected: DefaultConfigFile,
		},
		{
			name:     "env var only white space",
			value:    "   ",
			expected: DefaultConfigFile,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvVarConfigFile, tc.value)
			t.Cleanup(func() {
				ConfigFile = ""
			})

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			initConfigFile(fs)

			require.Equal(t, tc.expected, ConfigFile)
			flag := fs.Lookup(FlagNameConfigFile)
			require.NotNil(t, flag)
			require.Equal(t, tc.expected, flag.Value.String())
		})
	}
}

func TestConfig_InitLogger_EnvVars(t *testing.T) {
	tests := []struct {
		name          string
		logPathValue  string
		logLevelValue string
		expectedPath  string
		expectedLevel string
	}{
		{
			name:          "both env vars set with extra whitespace",
			logPathValue:  "  /var/log/bruno-doc.log  ",
			logLevelValue: "  DEBUG  ",
			expectedPath:  "/var/log/bruno-doc.log",
			expectedLevel: "debug",
		},
		{
			name:          "env vars set to only whitespace",
			logPathValue:  "   ",
			logLevelValue: "   ",
			expectedPath:  DefaultLogPath,
			expectedLevel: DefaultLogLevel,
		},
		{
			name:          "no env vars set",
			logPathValue:  "",
			logLevelValue: "",
			expectedPath:  DefaultLogPath,
			expectedLevel: DefaultLogLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvVarLogPath, tc.logPathValue)
			t.Setenv(EnvVarLogLevel, tc.logLevelValue)
			t.Cleanup(func() {
				LogPath = ""
				LogLevel = ""
			})

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			initLogger(fs)

			require.Equal(t, tc.expectedPath, LogPath)
			require.Equal(t, tc.expectedLevel, LogLevel)
			require.Equal(t, tc.expectedPath, fs.Lookup(FlagNameLogPath).Value.String())
			require.Equal(t, tc.expectedLevel, fs.Lookup(FlagNameLogLevel).Value.String())
		})
	}
}

func TestConfig_InitFlags_Precedence(t *testing.T) {
	tests := []struct {
		name            string
		envConfig       string
		envLogPath      string
		envLogLevel     string
		cmdLineArgs     []string
		expectedConfig  string
		expectedLogPath string
		expectedLogLvl  string
	}{
		{
			name:        "flags take precedence over env and defaults",
			envConfig:   "/env/bruno-doc.toml",
			envLogPath:  "/env/log/path.log",
			envLogLevel: "warn",
			cmdLineArgs: []string{
				"--" + FlagNameConfigFile, "/flag/bruno-doc.toml",
				"--" + FlagNameLogPath, "/flag/log.log",
				"--" + FlagNameLogLevel, "trace",
			},
			expectedConfig:  "/flag/bruno-doc.toml",
			expectedLogPath: "/flag/log.log",
			expectedLogLvl:  "trace",
		},
		{
			name:            "env vars used when flags not set",
			envConfig:       "/env/only/bruno-doc.toml",
			envLogPath:      "/env/only/log.log",
			envLogLevel:     "INFO",
			expectedConfig:  "/env/only/bruno-doc.toml",
			expectedLogPath: "/env/only/log.log",
			expectedLogLvl:  "info",
		},
		{
			name:            "defaults used when nothing set",
			expectedConfig:  DefaultConfigFile,
			expectedLogPath: DefaultLogPath,
			expectedLogLvl:  DefaultLogLevel,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(EnvVarConfigFile, tc.envConfig)
			t.Setenv(EnvVarLogPath, tc.envLogPath)
			t.Setenv(EnvVarLogLevel, tc.envLogLevel)
			t.Cleanup(func() {
				ConfigFile = ""
				LogPath = ""
				LogLevel = ""
			})

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			InitFlags(fs)

			require.NoError(t, fs.Parse(tc.cmdLineArgs))
			require.Equal(t, tc.expectedConfig, ConfigFile)
			require.Equal(t, tc.expectedLogPath, LogPath)
			require.Equal(t, tc.expectedLogLvl, LogLevel)
		})
	}
}
