package utils

import (
	"math"

	"gorm.io/gorm"

	"github.com/sazid-zero/ConsultBook-sub001/models"
)

// AverageRating computes the rounded mean of the given ratings. Rounding is
// half away from zero, so a mean of 4.5 yields 5. Zero ratings yields 0.
func AverageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return int(math.Round(float64(sum) / float64(len(ratings))))
}

// RecomputeConsultantRating rewrites the consultant's aggregate rating and
// count from all of their reviews. This is the only code path that writes
// those two fields; review mutations must call it in the same transaction.
func RecomputeConsultantRating(tx *gorm.DB, consultantID uint) error {
	var ratings []int
	err := tx.Model(&models.Review{}).
		Where("consultant_id = ?", consultantID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return StorageError("Failed to load reviews for rating recompute", err)
	}

	err = tx.Model(&models.ConsultantProfile{}).
		Where("consultant_id = ?", consultantID).
		Updates(map[string]interface{}{
			"average_rating": AverageRating(ratings),
			"rating_count":   len(ratings),
		}).Error
	if err != nil {
		return StorageError("Failed to store recomputed rating", err)
	}
	return nil
}
