package validators

import (
	"github.com/go-playground/validator/v10"
)

// WeightCountValidation checks that a model's weight vector length matches
// the declared feature count on the parent struct.
func WeightCountValidation(fl validator.FieldLevel) bool {
	featureCount := fl.Parent().FieldByName("FeatureCount").Int()
	return int64(fl.Field().Len()) == featureCount
}
