package ads

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"goadservice/lib/entity"
	"goadservice/lib/errs"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const DefaultImageContentType = "image/jpeg"

var dataURIPattern = regexp.MustCompile(`^data:([^;,]+);base64,(.*)$`)

type AdService struct {
	Records      entity.RecordStore
	Blobs        entity.BlobStore
	SignedURLTTL time.Duration
	Logger       *zap.SugaredLogger
}

func NewAdService(records entity.RecordStore, blobs entity.BlobStore, signedURLTTL time.Duration, logger *zap.SugaredLogger) *AdService {
	return &AdService{
		Records:      records,
		Blobs:        blobs,
		SignedURLTTL: signedURLTTL,
		Logger:       logger,
	}
}

// CreateAd generates the record identity, uploads the image when one was
// supplied, and persists the record. The blob is written before the record,
// so an upload failure leaves nothing behind; a record failure after upload
// triggers a best-effort blob delete.
func (s *AdService) CreateAd(req *CreateAdRequest) (*AdResponse, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)

	record := AdRecord{
		Id:        id,
		Title:     req.Title,
		Price:     req.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.ImageBase64 != "" {
		contentType, payload := SplitDataURI(req.ImageBase64)
		data, err := base64.StdEncoding.DecodeString(stripWhitespace(payload))
		if err != nil {
			return nil, errs.ValidationError{Message: "imageBase64 must be valid base64"}
		}
		if err := s.Blobs.Put(id, data, contentType); err != nil {
			return nil, errs.InternalError{Err: fmt.Errorf("upload image: %w", err)}
		}
		url, err := s.Blobs.SignedReadURL(id, s.SignedURLTTL)
		if err != nil {
			return nil, errs.InternalError{Err: fmt.Errorf("sign image url: %w", err)}
		}
		record.ImageUrl = url
	}

	validate := validator.New()
	if err := validate.Struct(record); err != nil {
		return nil, errs.InternalError{Err: fmt.Errorf("assembled record invalid: %w", err)}
	}

	item, err := RecordToItem(&record)
	if err != nil {
		return nil, errs.InternalError{Err: fmt.Errorf("encode record: %w", err)}
	}

	if err := s.Records.Put(item); err != nil {
		if record.ImageUrl != "" {
			if derr := s.Blobs.Delete(id); derr != nil {
				s.Logger.Warnw("orphaned image left behind", "id", id, "error", derr)
			}
		}
		return nil, errs.InternalError{Err: fmt.Errorf("save record: %w", err)}
	}

	return &AdResponse{
		Id:        record.Id,
		Title:     record.Title,
		Price:     record.Price,
		ImageUrl:  record.ImageUrl,
		CreatedAt: record.CreatedAt,
	}, nil
}

// GetAd fetches a record by id. Absence is not an error; both the record and
// the error are nil.
func (s *AdService) GetAd(id string) (*AdRecord, error) {
	item, err := s.Records.Get(id)
	if err != nil {
		return nil, errs.InternalError{Err: fmt.Errorf("load record: %w", err)}
	}
	if item == nil {
		return nil, nil
	}
	var record AdRecord
	if err := mapstructure.Decode(item, &record); err != nil {
		return nil, errs.InternalError{Err: fmt.Errorf("decode record: %w", err)}
	}
	return &record, nil
}

// SplitDataURI separates a data:<mime>;base64,<payload> string into content
// type and payload. Anything else is treated as a bare payload with the
// default image content type.
func SplitDataURI(s string) (string, string) {
	if m := dataURIPattern.FindStringSubmatch(s); m != nil {
		return m[1], m[2]
	}
	return DefaultImageContentType, s
}

func RecordToItem(record *AdRecord) (map[string]interface{}, error) {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var item map[string]interface{}
	err = json.Unmarshal(jsonData, &item)
	return item, err
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
