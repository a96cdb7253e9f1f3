package config

import (
	"flag"
	"os"
	"time"

	"github.com/avoronins/scoreboard/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN
//	-u string   public base URL for reset links
//	-o string   allowed CORS origins ("*" or comma-separated)
//	-t int      reset token validity, minutes
//	-m string   SMTP host (empty selects the console mailer)
//	-p int      SMTP port
//	-l string   SMTP user (login)
//	-w string   SMTP password
//	-f string   SMTP from address
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The token
// validity is accepted as an integer in minutes and converted to a
// time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-u", "-o", "-t", "-m", "-p", "-l", "-w", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.PublicBaseURL, "u", config.PublicBaseURL, "public base URL for reset links")
	fs.StringVar(&config.CORSOrigins, "o", config.CORSOrigins, "allowed CORS origins")

	resetTokenValidity := fs.Int("t", int(config.ResetTokenValidity.Minutes()), "reset_token_validity (in minutes)")

	fs.StringVar(&config.SMTPHost, "m", config.SMTPHost, "SMTP host")
	fs.IntVar(&config.SMTPPort, "p", config.SMTPPort, "SMTP port")
	fs.StringVar(&config.SMTPUser, "l", config.SMTPUser, "SMTP user")
	fs.StringVar(&config.SMTPPassword, "w", config.SMTPPassword, "SMTP password")
	fs.StringVar(&config.SMTPFrom, "f", config.SMTPFrom, "SMTP from address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ResetTokenValidity = time.Duration(*resetTokenValidity) * time.Minute
}
