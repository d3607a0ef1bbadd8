package predictController

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"medipulse/history"
	"medipulse/middleware"
	"medipulse/ml"
	"medipulse/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Predict runs the prediction pipeline on the submitted form fields. Works
// for anonymous callers; signed-in callers additionally get the result
// recorded in their history.
func Predict(c *fiber.Ctx) error {
	fields, err := rawFields(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	input, err := ml.Model.Validate(fields)
	if err != nil {
		return predictionError(c, err)
	}

	result, err := ml.Model.Predict(input)
	if err != nil {
		return predictionError(c, err)
	}

	data := fiber.Map{
		"result":      result.Message,
		"result_type": result.Label,
		"probability": result.Percentage,
	}

	// Save to history if signed in. Persistence is best effort: a store
	// failure must not turn a successful prediction into an error.
	if username, ok := c.Locals("username").(string); ok {
		rec := buildHistoryRecord(username, input, result)
		if err := history.Records.Append(c.Context(), rec); err != nil {
			log.Printf("Error appending history for %s: %v", username, err)
		} else {
			data["record_id"] = rec.RecordID
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Prediction completed.", data)
}

// predictionError maps pipeline failures to responses. User-correctable
// failures name the field; anything else stays generic and is only logged.
func predictionError(c *fiber.Ctx, err error) error {
	switch e := err.(type) {
	case *ml.MissingFieldError:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "❌ Missing field: "+e.Field, nil)
	case *ml.InvalidValueError:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "❌ Invalid value for "+e.Field+": "+e.Value, nil)
	case *ml.UnknownCategoryError:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "❌ Invalid value for "+e.Field+": "+e.Value, nil)
	}
	log.Printf("Prediction failed: %v", err)
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "❌ An unexpected error occurred.", nil)
}

// rawFields collects the submitted fields as name→string, from either a
// JSON body or an urlencoded form. Presence is tracked per field so a
// missing field is distinguishable from an empty one.
func rawFields(c *fiber.Ctx) (map[string]string, error) {
	fields := make(map[string]string)

	if c.Is("json") {
		var body map[string]interface{}
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return nil, err
		}
		for k, v := range body {
			switch val := v.(type) {
			case string:
				fields[k] = val
			case float64:
				fields[k] = strconv.FormatFloat(val, 'f', -1, 64)
			case bool:
				if val {
					fields[k] = "1"
				} else {
					fields[k] = "0"
				}
			default:
				raw, _ := json.Marshal(val)
				fields[k] = string(raw)
			}
		}
		return fields, nil
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		fields[string(key)] = string(value)
	})
	return fields, nil
}

// buildHistoryRecord copies the inputs into their display form; boolean
// formatting ("Yes"/"No") lives here, not in the domain type.
func buildHistoryRecord(username string, in ml.PredictionInput, res ml.PredictionResult) *models.HistoryRecord {
	inputs := map[string]interface{}{
		"Gender":          in.Gender,
		"Age":             in.Age,
		"Hypertension":    yesNo(in.Hypertension),
		"Heart Disease":   yesNo(in.HeartDisease),
		"Smoking History": in.SmokingHistory,
		"BMI":             in.BMI,
		"HbA1c Level":     in.HbA1cLevel,
		"Blood Glucose":   in.BloodGlucose,
	}
	encoded, err := json.Marshal(inputs)
	if err != nil {
		log.Printf("Error encoding history inputs: %v", err)
		encoded = []byte("{}")
	}

	return &models.HistoryRecord{
		RecordID:    uuid.NewString(),
		Username:    username,
		Timestamp:   time.Now().Format(models.DisplayTimeFormat),
		Inputs:      datatypes.JSON(encoded),
		Result:      res.Message,
		ResultType:  res.Label,
		Probability: res.Percentage,
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
