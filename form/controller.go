package form

import (
	"context"
	"fmt"

	"floodwatch/models"

	"github.com/apex/log"
)

// Controller drives one multi-step form: it gates step transitions on
// validation, accumulates validated fields into a draft mirrored to the
// store, and hands the accumulated record to the submitter on confirm.
type Controller struct {
	def         Definition
	store       Store
	client      Submitter
	step        int
	accumulated Draft
}

// NewController mounts the form at step 1, resuming from any stored draft.
func NewController(def Definition, store Store, client Submitter) *Controller {
	c := &Controller{
		def:         def,
		store:       store,
		client:      client,
		step:        1,
		accumulated: Draft{},
	}
	d, err := store.Load(def.Key)
	if err != nil {
		log.Warnf("Failed to load draft %s: %v", def.Key, err)
	}
	if d != nil {
		c.accumulated = d
	}
	return c
}

// Step returns the current step, 1-based. ReviewStep is the terminal
// read-only pseudo-step after the last data-entry step.
func (c *Controller) Step() int {
	return c.step
}

func (c *Controller) ReviewStep() int {
	return len(c.def.Steps) + 1
}

func (c *Controller) AtReview() bool {
	return c.step == c.ReviewStep()
}

// Accumulated returns a copy of the merged draft.
func (c *Controller) Accumulated() Draft {
	return c.accumulated.Clone()
}

// Next validates the current step's input. On success the fields are merged
// into the accumulated draft (new values override old), the draft is
// persisted, and the controller advances. On failure nothing changes and
// all per-field errors are returned at once.
func (c *Controller) Next(input Draft) models.FieldErrors {
	if c.AtReview() {
		return nil
	}
	validated, errs := c.def.Steps[c.step-1].Validate(input)
	if errs != nil {
		return errs
	}
	for k, v := range validated {
		c.accumulated[k] = v
	}
	if err := c.store.Save(c.def.Key, c.accumulated); err != nil {
		// Draft persistence is resilience, not correctness; keep going.
		log.Warnf("Failed to persist draft %s: %v", c.def.Key, err)
	}
	c.step++
	return nil
}

// Back moves one step back without revalidation. Merged fields stay merged.
func (c *Controller) Back() {
	if c.step > 1 {
		c.step--
	}
}

// Edit returns from the review screen to the first step, keeping all data.
func (c *Controller) Edit() {
	if c.AtReview() {
		c.step = 1
	}
}

// ConfirmSubmit sends the accumulated record. Acceptance clears the draft
// and resets the form; any failure leaves everything in place so the user
// can retry with another explicit confirm.
func (c *Controller) ConfirmSubmit(ctx context.Context) (Result, error) {
	if !c.AtReview() {
		return Result{}, fmt.Errorf("form %s is not at the review step", c.def.Key)
	}

	res := c.client.Submit(ctx, c.accumulated)
	if res.Outcome == Accepted {
		if err := c.store.Clear(c.def.Key); err != nil {
			log.Warnf("Failed to clear draft %s: %v", c.def.Key, err)
		}
		c.accumulated = Draft{}
		c.step = 1
	}
	return res, nil
}
