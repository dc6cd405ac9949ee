// config/config.go
package config

import (
	"log"
	"os"
	"time"
)

var (
	Port            string
	MongoURI        string
	JWTKey          []byte
	JWTExpiration   time.Duration
	StripeSecretKey string
)

func LoadConfig() {
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	MongoURI = os.Getenv("MONGODB_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017"
	}

	JWTKey = []byte(os.Getenv("JWT_SECRET"))
	if len(JWTKey) == 0 {
		JWTKey = []byte("secret")
	}

	// Access tokens are short-lived; clients re-request one on login.
	expireStr := os.Getenv("JWT_EXPIRE")
	dur := time.Hour
	if expireStr != "" {
		var err error
		dur, err = time.ParseDuration(expireStr)
		if err != nil {
			log.Printf("Invalid JWT_EXPIRE: %s, using 1h", expireStr)
			dur = time.Hour
		}
	}
	JWTExpiration = dur

	StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	if StripeSecretKey == "" {
		log.Println("WARNING: STRIPE_SECRET_KEY not set, payment intents will fail")
	}
}
