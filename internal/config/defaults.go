package config

const (
	defaultXMLDir           = "~/alecheck/xml"
	defaultSpeedFactorFile  = "rtfactor.conf"
	defaultEpisodePrefix    = "NJ"
	defaultSequenceDigits   = 6
	defaultDecorMode        = "override"
	defaultStorageTemplate  = `\\facilis\LGS_RUSHES\NATIFS\LGS_EP_{episode}\`
	defaultMediaTemplate    = `\\nexis\LGS_MTG_{group}\Avid MediaFiles\MXF\EP{episode}`
	defaultEpisodeGroupSize = 10
	defaultFrameRate        = 25
	defaultServerBind       = "127.0.0.1:5000"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"

	// DefaultSpeedFactor is used whenever the speed factor file is absent or unreadable.
	DefaultSpeedFactor = 10.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			XMLDir:          defaultXMLDir,
			StateDir:        defaultStateDir(),
			SpeedFactorFile: defaultSpeedFactorFile,
		},
		Convention: Convention{
			EpisodePrefix:    defaultEpisodePrefix,
			SequenceDigits:   defaultSequenceDigits,
			DecorMode:        defaultDecorMode,
			StorageTemplate:  defaultStorageTemplate,
			MediaTemplate:    defaultMediaTemplate,
			EpisodeGroupSize: defaultEpisodeGroupSize,
			FrameRate:        defaultFrameRate,
		},
		Server: Server{
			Bind: defaultServerBind,
		},
		Ledger: Ledger{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
