package cfg

type Cfg struct {
	// Database configuration
	DBPath string

	// Application configuration
	Port            string
	BaseUrl         string
	ShopUrl         string
	Integration     string
	RegistrationUrl string
	APIAccessKey    string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
