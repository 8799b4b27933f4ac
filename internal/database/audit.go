package database

import "campus-portal/internal/models"

// helper for the account audit trail; best-effort, never blocks the caller
func CreateAuditLog(actorID, targetID uint, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		ActorID:  actorID,
		TargetID: targetID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}

func ListAuditLogs() []models.AuditLog {
	var records []models.AuditLog
	if err := DB.Order("created_at desc, id desc").Find(&records).Error; err != nil {
		return nil
	}
	return records
}
