package serving

// Task type constants
const (
	TaskTypeClassification = "classification"
	TaskTypeRegression     = "regression"
)

// Classification label constants
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
)

// classificationThreshold is the sigmoid cutoff between the two labels.
const classificationThreshold = 0.5
