package entity

import (
	"bytes"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	s3 "github.com/aws/aws-sdk-go/service/s3"
)

// RecordStore wraps the key-value table holding ad records. Items are plain
// maps keyed by the adaptor's configured id attribute.
type RecordStore interface {
	Put(item map[string]interface{}) error
	Get(id string) (map[string]interface{}, error)
}

// BlobStore wraps the object store holding uploaded image bytes.
type BlobStore interface {
	Put(key string, data []byte, contentType string) error
	SignedReadURL(key string, ttl time.Duration) (string, error)
	Delete(key string) error
}

type DynamoAdaptorConfig struct {
	Svc       *dynamodb.DynamoDB
	TableName string
	IdKey     string
}

type DynamoRecordAdaptor struct {
	Config DynamoAdaptorConfig
}

func (a DynamoRecordAdaptor) Put(item map[string]interface{}) error {
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = a.Config.Svc.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(a.Config.TableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put record: %w", err)
	}
	return nil
}

func (a DynamoRecordAdaptor) Get(id string) (map[string]interface{}, error) {
	out, err := a.Config.Svc.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(a.Config.TableName),
		Key: map[string]*dynamodb.AttributeValue{
			a.Config.IdKey: {S: aws.String(id)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	var item map[string]interface{}
	if err := dynamodbattribute.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return item, nil
}

type S3AdaptorConfig struct {
	Svc    *s3.S3
	Bucket string
}

type S3BlobAdaptor struct {
	Config S3AdaptorConfig
}

func (a S3BlobAdaptor) Put(key string, data []byte, contentType string) error {
	_, err := a.Config.Svc.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(a.Config.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

func (a S3BlobAdaptor) SignedReadURL(key string, ttl time.Duration) (string, error) {
	req, _ := a.Config.Svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(a.Config.Bucket),
		Key:    aws.String(key),
	})
	url, err := req.Presign(ttl)
	if err != nil {
		return "", fmt.Errorf("presign object: %w", err)
	}
	return url, nil
}

func (a S3BlobAdaptor) Delete(key string) error {
	_, err := a.Config.Svc.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(a.Config.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
