package models

// Test is an upcoming or graded exam for a subject. Score is nil until the
// test has been graded.
type Test struct {
	ID        int64    `json:"id"`
	SubjectID int64    `json:"subject_id"`
	Title     string   `json:"title"`
	TestDate  string   `json:"test_date,omitempty"`
	Score     *float64 `json:"score"`

	UserID int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Test model.
func (t Test) TableName() string {
	return "tests"
}
