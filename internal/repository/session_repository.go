package repository

import (
	"errors"

	"studymo_backend/internal/model"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.StudySession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) Update(session *model.StudySession) error {
	return r.DB.Save(session).Error
}

// FindActiveByUser 查找用户当前活跃会话，不存在时返回 (nil, nil)
func (r *SessionRepository) FindActiveByUser(userID uint) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Where("user_id = ? AND is_active = ?", userID, true).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) FindByID(id string) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Where("id = ?", id).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) CreateResponse(response *model.SessionResponse) error {
	return r.DB.Create(response).Error
}

// FindResponses 按作答顺序返回会话的全部作答记录
func (r *SessionRepository) FindResponses(sessionID string) ([]model.SessionResponse, error) {
	var responses []model.SessionResponse
	err := r.DB.Where("session_id = ?", sessionID).Order("id").Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *SessionRepository) CountResponses(sessionID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.SessionResponse{}).Where("session_id = ?", sessionID).Count(&count).Error
	return count, err
}

// CountCompletedByUser 统计用户已完成的会话数
func (r *SessionRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudySession{}).
		Where("user_id = ? AND completed_at IS NOT NULL", userID).Count(&count).Error
	return count, err
}
