package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"storefront.db"`

	Store    Store    `envPrefix:"STORE_"`
	Commerce Commerce `envPrefix:"COMMERCE_"`
	Cashfree Cashfree `envPrefix:"CASHFREE_"`
	PhonePe  PhonePe  `envPrefix:"PHONEPE_"`
	Session  Session  `envPrefix:"SESSION_"`
}

// Store holds storefront-level defaults applied when the upstream
// platform omits a field.
type Store struct {
	Currency        string `env:"CURRENCY" envDefault:"INR"`
	ShippingCountry string `env:"SHIPPING_COUNTRY" envDefault:"IN"`
}

// Commerce is the external commerce platform this storefront fronts.
type Commerce struct {
	BaseApiURL string `env:"BASE_API_URL"`
	StoreID    string `env:"STORE_ID"`
	APIKey     string `env:"API_KEY"`
}

type Cashfree struct {
	BaseApiURL string `env:"BASE_API_URL"`
	AppID      string `env:"APP_ID"`
	SecretKey  string `env:"SECRET_KEY"`
	ReturnURL  string `env:"RETURN_URL"`
}

type PhonePe struct {
	PayPageURL string `env:"PAY_PAGE_URL"`
	MerchantID string `env:"MERCHANT_ID"`
}

type Session struct {
	JWTSecret string `env:"JWT_SECRET"`
	TTLHours  int    `env:"TTL_HOURS" envDefault:"72"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
