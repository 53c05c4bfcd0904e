package testutil

import (
	"github.com/anyamemensah/recode-cols/internal/domain/data"
)

// CreateSurveyDataset creates a survey dataset with sample responses for testing
func CreateSurveyDataset() *data.Dataset {
	ds := data.New("survey")
	ds.AddColumn("respondent_id", int64(1), int64(2), int64(3), int64(4))
	ds.AddColumn("sex", int64(1), int64(2), int64(1), int64(2))
	ds.AddColumn("enrolled", "Y", "N", "Y", "Y")
	ds.AddColumn("score", 3.5, 4.0, 2.5, 3.0)
	return ds
}

// CreateCodebookTable creates a codebook table matching the survey dataset
func CreateCodebookTable() *data.Dataset {
	ds := data.New("codebook")
	ds.AddColumn("column_name", "sex", "sex", "enrolled", "enrolled")
	ds.AddColumn("old_values", "1", "2", "Y", "N")
	ds.AddColumn("new_labels", "Male", "Female", "Yes", "No")
	return ds
}

// CreateRecodedSurveyDataset creates the survey dataset as it should look
// after the codebook table has been applied
func CreateRecodedSurveyDataset() *data.Dataset {
	ds := data.New("survey")
	ds.AddColumn("respondent_id", int64(1), int64(2), int64(3), int64(4))
	ds.AddColumn("sex", "Male", "Female", "Male", "Female")
	ds.AddColumn("enrolled", "Yes", "No", "Yes", "Yes")
	ds.AddColumn("score", 3.5, 4.0, 2.5, 3.0)
	return ds
}
