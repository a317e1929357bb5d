// Package main provides the AWS Lambda entry point. Lex invokes the function
// directly with the code hook event and reads the dialog action it returns.
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/garyellow/showrank-lexbot/internal/app"
	"github.com/garyellow/showrank-lexbot/internal/config"
	"github.com/garyellow/showrank-lexbot/internal/modules"
)

func main() {
	cfg, err := config.LoadForMode(config.LambdaMode)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := app.NewLogger(cfg)
	app.InitSentry(cfg, log)

	// Lambda has no scrape endpoint, so dispatch metrics stay off.
	dispatcher := modules.NewRegistry(modules.Options{
		Logger:             log,
		LenientYearParsing: cfg.LenientYearParsing,
	})

	log.WithField("intents", dispatcher.Intents()).Info("Lambda handler ready")
	lambda.Start(newHandler(dispatcher, log).Handle)
}
