package main

import (
	"go-medical-appointment/cmd/bootstrap"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cold start: the store handle is built once and reused by every invocation
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	lambda.Start(app.LambdaHandler().Handle)
}
