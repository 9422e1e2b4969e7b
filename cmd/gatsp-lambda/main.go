// Command gatsp-lambda serves the solver as an AWS Lambda Function URL.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/katalvlaran/gatsp/handler"
)

func main() {
	lambda.Start(handler.Handle)
}
