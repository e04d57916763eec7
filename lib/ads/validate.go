package ads

import (
	"strings"
	"unicode/utf8"

	"goadservice/lib/errs"
)

// ValidateCreateAd checks the parsed request body field by field and stops at
// the first violation. JSON numbers always decode to float64, so any other
// dynamic type under "price" is not a number.
func ValidateCreateAd(body map[string]interface{}) (*CreateAdRequest, error) {
	title, ok := body["title"].(string)
	if !ok || title == "" {
		return nil, errs.ValidationError{Message: "Title is required and must be a string"}
	}
	if utf8.RuneCountInString(title) < 3 {
		return nil, errs.ValidationError{Message: "Title must be at least 3 characters long"}
	}

	priceRaw, present := body["price"]
	if !present || priceRaw == nil {
		return nil, errs.ValidationError{Message: "Price is required"}
	}
	price, ok := priceRaw.(float64)
	if !ok {
		return nil, errs.ValidationError{Message: "Price must be a number"}
	}
	if price < 0 {
		return nil, errs.ValidationError{Message: "Price must be a non-negative number"}
	}

	req := &CreateAdRequest{
		Title: title,
		Price: price,
	}

	if imageRaw, present := body["imageBase64"]; present && imageRaw != nil {
		image, ok := imageRaw.(string)
		if !ok || strings.TrimSpace(image) == "" {
			return nil, errs.ValidationError{Message: "imageBase64 must be a non-empty base64 string when provided"}
		}
		req.ImageBase64 = image
	}

	return req, nil
}
