//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

var lambdaLog = newLogger(os.Stderr, zerolog.LevelWarnValue)

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}

	cfg := DefaultConfig()
	cfg.Strict = event.QueryStringParameters["strict"] == "1"

	res, err := Import([]byte(body), cfg, lambdaLog)
	switch {
	case errors.Is(err, ErrInvalidJSON), errors.Is(err, ErrUnknownFormat), errors.Is(err, ErrSchema):
		return errResp(http.StatusBadRequest, err.Error())
	case err != nil:
		return errResp(http.StatusInternalServerError, err.Error())
	}
	if res.Format == FormatMona {
		return errResp(http.StatusUnprocessableEntity, "document is already in mona format")
	}

	out, err := EncodeResult(res, false)
	if err != nil {
		return errResp(http.StatusInternalServerError, err.Error())
	}
	return events.LambdaFunctionURLResponse{StatusCode: http.StatusOK, Headers: jsonHeader, Body: string(out)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := sonic.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
