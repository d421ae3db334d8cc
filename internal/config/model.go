package config

type Config struct {
	App        App        `json:"app"`
	Dictionary Dictionary `json:"dictionary"`
	Build      Build      `json:"build"`
	Server     Server     `json:"server"`
	Cache      Cache      `json:"cache"`
}

type App struct {
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

type Dictionary struct {
	Path        string `json:"path"`
	FoldCase    bool   `json:"fold_case"`
	SkipInvalid bool   `json:"skip_invalid"`
	DB          string `json:"db"`   // bbolt file holding imported dictionaries
	Name        string `json:"name"` // dictionary name inside DB
}

type Build struct {
	Parallelism int `json:"parallelism"`
}

type Server struct {
	Addr       string  `json:"addr"`
	GinMode    string  `json:"gin_mode"`
	MaxLetters int     `json:"max_letters"` // longest board /solve accepts
	Limiter    Limiter `json:"limiter"`
}

type Limiter struct {
	Requests int      `json:"requests"`
	Per      Duration `json:"per"`
}

type Cache struct {
	Size int      `json:"size"`
	TTL  Duration `json:"ttl"`
}
