package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"marksheet/internal/marks"
	"marksheet/internal/service"
)

var validate = validator.New()

var (
	errInvalidThreshold = errors.New("threshold must be an integer between 0 and 100")
	errUnknownSubject   = errors.New("subject not found in dataset")
)

// FilterRequest selects a subset of a dataset's records.
type FilterRequest struct {
	DatasetID  string `json:"dataset_id" validate:"required"`
	FilterType string `json:"filter_type" validate:"required,oneof=all overall_pass overall_fail subject_pass subject_fail"`
	Subject    string `json:"subject" validate:"required_if=FilterType subject_pass,required_if=FilterType subject_fail"`
	Threshold  *int   `json:"threshold" validate:"omitempty,min=0,max=100"`
}

// GradedRecord is one filtered row with its grading outcome attached.
type GradedRecord struct {
	StudentName    string          `json:"student_name"`
	Marks          map[string]int  `json:"marks"`
	Grades         map[string]bool `json:"grades"`
	PassedSubjects int             `json:"passed_subjects"`
	FailedSubjects int             `json:"failed_subjects"`
	OverallStatus  string          `json:"overall_status"`
}

type FilterHandler struct {
	datasetService *service.DatasetService
	passThreshold  int
}

func NewFilterHandler(datasetService *service.DatasetService, passThreshold int) *FilterHandler {
	return &FilterHandler{datasetService: datasetService, passThreshold: passThreshold}
}

// FilterDataset applies a named predicate to a stored dataset and returns
// the matching rows with their pass/fail status. An empty match is a valid
// result, not an error.
func (h *FilterHandler) FilterDataset(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid filter request: "+err.Error())
		return
	}

	threshold := h.passThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	table, _, err := h.datasetService.Load(req.DatasetID)
	if err != nil {
		if errors.Is(err, service.ErrDatasetNotFound) {
			writeError(w, http.StatusNotFound, "No data loaded. Please upload a file first.")
			return
		}
		slog.Error("failed to load dataset", slog.String("dataset_id", req.DatasetID), slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "Failed to load dataset")
		return
	}

	predicate, description, err := resolvePredicate(table, req.FilterType, req.Subject, threshold)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filtered := table.Filter(predicate)
	records := make([]GradedRecord, 0, len(filtered.Records))
	for _, rec := range filtered.Records {
		status := marks.RecordStatus(rec, threshold)
		overall := "Fail"
		if status.OverallPass {
			overall = "Pass"
		}
		records = append(records, GradedRecord{
			StudentName:    rec.Name,
			Marks:          rec.Marks,
			Grades:         marks.Grade(rec, threshold),
			PassedSubjects: status.PassedSubjects,
			FailedSubjects: status.FailedSubjects,
			OverallStatus:  overall,
		})
	}

	message := "Filter applied successfully"
	if len(records) == 0 {
		message = "No records found matching the filter criteria"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":            true,
		"message":            message,
		"filter_description": description,
		"rows":               len(records),
		"data":               records,
	})
}

// resolvePredicate maps a filter type to a predicate and its human
// description. Subject filters require the subject to exist in the table.
func resolvePredicate(table *marks.Table, filterType, subject string, threshold int) (marks.Predicate, string, error) {
	switch filterType {
	case "all":
		return marks.All(), "All students", nil
	case "overall_pass":
		return marks.PassedAll(threshold), "Students who passed all subjects", nil
	case "overall_fail":
		return marks.FailedAny(threshold), "Students who failed at least one subject", nil
	case "subject_pass":
		if !table.HasSubject(subject) {
			return nil, "", errUnknownSubject
		}
		return marks.SubjectPass(subject, threshold), fmt.Sprintf("Students who passed %s", subject), nil
	case "subject_fail":
		if !table.HasSubject(subject) {
			return nil, "", errUnknownSubject
		}
		return marks.SubjectFail(subject, threshold), fmt.Sprintf("Students who failed %s", subject), nil
	default:
		return nil, "", fmt.Errorf("invalid filter type %q", filterType)
	}
}
