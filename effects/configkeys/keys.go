package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigPuzzlePrefix   = ConfigPrefix + delimiter + "puzzle"
	ConfigPuzzleInputDir = ConfigPuzzlePrefix + delimiter + "input_dir"
	ConfigPuzzleYear     = ConfigPuzzlePrefix + delimiter + "year"

	ConfigEffectPrefix = ConfigPrefix + delimiter + "effect"

	ConfigEffectLogPrefix = ConfigEffectPrefix + delimiter + "log"

	ConfigEffectLogHandlerPrefix     = ConfigEffectLogPrefix + delimiter + "handler"
	ConfigEffectLogHandlerBufferSize = ConfigEffectLogHandlerPrefix + delimiter + "buffer_size"
	ConfigEffectLogLevel             = ConfigEffectLogPrefix + delimiter + "level"

	ConfigEffectTribonacciPrefix = ConfigEffectPrefix + delimiter + "tribonacci"

	ConfigEffectTribonacciHandlerPrefix     = ConfigEffectTribonacciPrefix + delimiter + "handler"
	ConfigEffectTribonacciHandlerBufferSize = ConfigEffectTribonacciHandlerPrefix + delimiter + "buffer_size"
	ConfigEffectTribonacciHandlerNumWorkers = ConfigEffectTribonacciHandlerPrefix + delimiter + "num_workers"
)
