package main

import (
	"encoding/json"
	"net/http"

	"goadservice/lib/ads"
	"goadservice/lib/auth"
	"goadservice/lib/config"
	"goadservice/lib/entity"
	"goadservice/lib/errs"
	"goadservice/lib/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	session "github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	s3 "github.com/aws/aws-sdk-go/service/s3"
	"go.uber.org/zap"
)

var handler Handler

type Handler func(req *events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

type ActionContext struct {
	Config  *config.Config
	Service *ads.AdService
	Logger  *zap.SugaredLogger
}

func CreateAdHandler(req *events.APIGatewayProxyRequest, ac *ActionContext) (events.APIGatewayProxyResponse, error) {
	log := logger.ForRequest(ac.Logger, req.RequestContext.RequestID)
	log.Infow("received create ad request", "path", req.Path)

	if ac.Config.ApiKey == "" {
		log.Errorw("API_KEY is not configured")
	}
	apiKey := auth.HeaderValue(req.Headers, "x-api-key")
	if !auth.ValidateApiKey(apiKey, ac.Config.ApiKey) {
		return errorResponse(errs.UnauthorizedError{Message: "Invalid or missing x-api-key"}, log), nil
	}

	body := req.Body
	if body == "" {
		body = "{}"
	}
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return errorResponse(errs.MalformedInputError{Message: "Invalid JSON in request body"}, log), nil
	}

	createReq, err := ads.ValidateCreateAd(raw)
	if err != nil {
		return errorResponse(err, log), nil
	}

	res, err := ac.Service.CreateAd(createReq)
	if err != nil {
		return errorResponse(err, log), nil
	}

	log.Infow("ad created", "id", res.Id)
	return jsonResponse(http.StatusCreated, res), nil
}

func errorResponse(err error, log *zap.SugaredLogger) events.APIGatewayProxyResponse {
	status, message := errs.Response(err)
	if status == http.StatusInternalServerError {
		// The caller only ever sees the generic message.
		log.Errorw("request failed", "error", err)
	} else {
		log.Infow("request rejected", "status", status, "message", message)
	}
	return jsonResponse(status, map[string]string{"message": message})
}

func jsonResponse(status int, body interface{}) events.APIGatewayProxyResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"message":"Internal Server Error"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(encoded),
	}
}

func InitializeHandler(ac ActionContext) Handler {
	return func(req *events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		if req.HTTPMethod != "" && req.HTTPMethod != http.MethodPost {
			return jsonResponse(http.StatusMethodNotAllowed, map[string]string{"message": "Method Not Allowed"}), nil
		}
		return CreateAdHandler(req, &ac)
	}
}

func init() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	log.Infow("cold start")

	sess := session.Must(session.NewSession())

	records := entity.DynamoRecordAdaptor{
		Config: entity.DynamoAdaptorConfig{
			Svc:       dynamodb.New(sess),
			TableName: cfg.AdsTableName,
			IdKey:     "id",
		},
	}
	blobs := entity.S3BlobAdaptor{
		Config: entity.S3AdaptorConfig{
			Svc:    s3.New(sess),
			Bucket: cfg.AdsBucketName,
		},
	}

	actionContext := ActionContext{
		Config:  cfg,
		Service: ads.NewAdService(records, blobs, cfg.SignedURLTTL, log),
		Logger:  log,
	}
	handler = InitializeHandler(actionContext)
}

func main() {
	lambda.Start(handler)
}
