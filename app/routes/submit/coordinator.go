package submit

import (
	"fmt"
	"image"
	"log"

	"github.com/essa0044/ImageCategorizer/app/assets"
	"github.com/essa0044/ImageCategorizer/app/imaging"
	"github.com/essa0044/ImageCategorizer/app/models"
)

// Outcome describes what happened to one rectangle during submission.
type Outcome string

const (
	OutcomeStored     Outcome = "stored"
	OutcomeBadData    Outcome = "invalid_data"
	OutcomeDegenerate Outcome = "degenerate"
	OutcomeFailed     Outcome = "failed"
)

// RectResult pairs a rectangle's 1-based index with its outcome.
type RectResult struct {
	Index   int     `json:"index"`
	Outcome Outcome `json:"outcome"`
}

// Result is the coordinator's answer for one successful submission.
type Result struct {
	ExamID         int
	FinalImagePath string // relative to the asset root
	Rectangles     []RectResult
}

// ProcessedCount returns how many rectangle rows were actually inserted.
func (r *Result) ProcessedCount() int {
	n := 0
	for _, rr := range r.Rectangles {
		if rr.Outcome == OutcomeStored {
			n++
		}
	}
	return n
}

// Coordinator runs the transactional submission pipeline: create the exam
// row, promote the temp asset, crop each rectangle, persist the rows, all
// in one transaction. Rectangle-local failures skip that rectangle only;
// anything else rolls back every DB write made in the call. Filesystem
// writes already performed are not undone.
type Coordinator struct {
	Store  ExamStore
	Assets *assets.Store
}

// Submit processes one classification submission. tempName identifies a
// temp asset produced by a prior upload; rawRects are the client's
// rectangles in input order.
func (co *Coordinator) Submit(tempName, originalFilename string, rawRects []map[string]interface{}) (*Result, error) {
	// Check the asset exists before opening a transaction that depends
	// on it.
	tempPath, err := co.Assets.ResolveTemp(tempName)
	if err != nil {
		return nil, err
	}

	tx, err := co.Store.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	examID, err := tx.InsertExam(originalFilename, tempName)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create exam record: %w", err)
	}
	log.Printf("Created new exam record with ID: %d", examID)

	finalAbs, finalRel, outcome, err := co.Assets.Promote(examID, tempPath)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to promote image for exam %d: %w", examID, err)
	}
	if outcome == assets.OutcomeCopied {
		log.Printf("Copied image to %s", finalAbs)
	} else {
		log.Printf("Moved image to %s", finalAbs)
	}

	if err := tx.UpdateExamImagePath(examID, finalRel); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update exam image path: %w", err)
	}

	img, imgW, imgH, err := imaging.Open(finalAbs)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to load final image for exam %d: %w", examID, err)
	}

	res := &Result{ExamID: examID, FinalImagePath: finalRel}
	for idx, raw := range rawRects {
		rectIndex := idx + 1
		out := co.processRectangle(tx, examID, rectIndex, raw, img, imgW, imgH)
		res.Rectangles = append(res.Rectangles, RectResult{Index: rectIndex, Outcome: out})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit submission for exam %d: %w", examID, err)
	}
	log.Printf("Submitted classification for exam %d with %d/%d rectangles processed",
		examID, res.ProcessedCount(), len(rawRects))
	return res, nil
}

func (co *Coordinator) processRectangle(tx ExamTx, examID, rectIndex int, raw map[string]interface{}, img image.Image, imgW, imgH int) Outcome {
	in, err := parseRectangle(raw)
	if err != nil {
		log.Printf("Skipping rectangle %d for exam %d due to invalid data: %v", rectIndex, examID, err)
		return OutcomeBadData
	}

	box, err := imaging.ClampBox(imgW, imgH, in.X, in.Y, in.Width, in.Height)
	if err != nil {
		log.Printf("Skipping rectangle %d for exam %d due to invalid dimensions", rectIndex, examID)
		return OutcomeDegenerate
	}

	cropAbs, cropRel := co.Assets.CropTarget(examID, rectIndex)
	if err := imaging.SaveCrop(img, box, cropAbs); err != nil {
		log.Printf("Error cropping rectangle %d for exam %d: %v", rectIndex, examID, err)
		return OutcomeFailed
	}

	rect := &models.ClassifiedRectangle{
		ExamID:           examID,
		RectIndex:        rectIndex,
		CategoryID:       in.CategoryID,
		Hierarchy:        in.Hierarchy,
		X:                in.X,
		Y:                in.Y,
		Width:            in.Width,
		Height:           in.Height,
		CroppedImagePath: cropRel,
		Source:           in.Source,
	}
	if err := tx.InsertRectangle(rect); err != nil {
		log.Printf("Error storing rectangle %d for exam %d: %v", rectIndex, examID, err)
		return OutcomeFailed
	}
	return OutcomeStored
}
