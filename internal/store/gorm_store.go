package store

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"secondbrain/internal/models"
)

// GormStore persists records through GORM. A single mutex serializes
// mutations so partial writes never interleave; reads go straight to the DB.
type GormStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Order("id asc").Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *GormStore) GetGoal(id uint) (models.Goal, error) {
	var goal models.Goal
	if err := s.db.First(&goal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Goal{}, &models.NotFoundError{Kind: "goal", Key: strconv.Itoa(int(id))}
		}
		return models.Goal{}, err
	}
	return goal, nil
}

func (s *GormStore) CreateGoal(title, deadline string) (models.Goal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Goal{}, &models.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if _, err := time.Parse(models.DateLayout, deadline); err != nil {
		return models.Goal{}, &models.ValidationError{Field: "deadline", Reason: "expected YYYY-MM-DD, got " + deadline}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	goal := models.Goal{
		Title:    title,
		Deadline: deadline,
		Status:   models.GoalStatusActive,
	}
	if err := s.db.Create(&goal).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (s *GormStore) UpdateGoal(id uint, patch models.UpdateGoalRequest) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, err := s.GetGoal(id)
	if err != nil {
		return models.Goal{}, err
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return models.Goal{}, &models.ValidationError{Field: "title", Reason: "must not be empty"}
		}
		goal.Title = title
	}
	if patch.Deadline != nil {
		if _, err := time.Parse(models.DateLayout, *patch.Deadline); err != nil {
			return models.Goal{}, &models.ValidationError{Field: "deadline", Reason: "expected YYYY-MM-DD, got " + *patch.Deadline}
		}
		goal.Deadline = *patch.Deadline
	}

	if err := s.db.Save(&goal).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (s *GormStore) DeleteGoal(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.Delete(&models.Goal{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Kind: "goal", Key: strconv.Itoa(int(id))}
	}
	// Cascade: no task may outlive its goal.
	return s.db.Where("goal_id = ?", id).Delete(&models.Task{}).Error
}

func (s *GormStore) CompleteGoal(id uint) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, err := s.GetGoal(id)
	if err != nil {
		return models.Goal{}, err
	}
	if goal.Status == models.GoalStatusCompleted {
		return goal, nil
	}

	goal.Status = models.GoalStatusCompleted
	if err := s.db.Save(&goal).Error; err != nil {
		return models.Goal{}, err
	}
	// A completed goal reads as 100%: close out its remaining tasks.
	if err := s.db.Model(&models.Task{}).
		Where("goal_id = ? AND status = ?", id, models.TaskStatusPending).
		Update("status", models.TaskStatusCompleted).Error; err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

func (s *GormStore) GetTasks(goalID uint) ([]models.Task, error) {
	tasks := []models.Task{}
	if err := s.db.Where("goal_id = ?", goalID).Order("id asc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *GormStore) GetTasksByGoal() (map[uint][]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Order("id asc").Find(&tasks).Error; err != nil {
		return nil, err
	}
	byGoal := make(map[uint][]models.Task, len(tasks))
	for _, t := range tasks {
		byGoal[t.GoalID] = append(byGoal[t.GoalID], t)
	}
	return byGoal, nil
}

func (s *GormStore) CreateTask(goalID uint, text string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, &models.ValidationError{Field: "task", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.GetGoal(goalID); err != nil {
		return models.Task{}, err
	}
	task := models.Task{
		GoalID: goalID,
		Text:   text,
		Status: models.TaskStatusPending,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *GormStore) UpdateTask(goalID, taskID uint, text string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, &models.ValidationError{Field: "task", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.getTask(goalID, taskID)
	if err != nil {
		return models.Task{}, err
	}
	task.Text = text
	if err := s.db.Save(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *GormStore) ToggleTask(goalID, taskID uint) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.getTask(goalID, taskID)
	if err != nil {
		return models.Task{}, err
	}
	if task.Status == models.TaskStatusPending {
		task.Status = models.TaskStatusCompleted
	} else {
		task.Status = models.TaskStatusPending
	}
	if err := s.db.Save(&task).Error; err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (s *GormStore) DeleteTask(goalID, taskID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.db.Where("goal_id = ?", goalID).Delete(&models.Task{}, taskID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Kind: "task", Key: strconv.Itoa(int(taskID))}
	}
	return nil
}

func (s *GormStore) getTask(goalID, taskID uint) (models.Task, error) {
	var task models.Task
	err := s.db.Where("goal_id = ?", goalID).First(&task, taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, &models.NotFoundError{Kind: "task", Key: strconv.Itoa(int(taskID))}
		}
		return models.Task{}, err
	}
	return task, nil
}

func (s *GormStore) AddHours(date string, delta float64) (models.StudyLog, error) {
	if delta <= 0 {
		return models.StudyLog{}, &models.ValidationError{Field: "hours", Reason: "must be positive"}
	}
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return models.StudyLog{}, &models.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD, got " + date}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var entry models.StudyLog
	err := s.db.Where("date = ?", date).First(&entry).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = models.StudyLog{Date: date, Hours: delta}
		if err := s.db.Create(&entry).Error; err != nil {
			return models.StudyLog{}, err
		}
	case err != nil:
		return models.StudyLog{}, err
	default:
		entry.Hours += delta
		if err := s.db.Save(&entry).Error; err != nil {
			return models.StudyLog{}, err
		}
	}
	return entry, nil
}

func (s *GormStore) GetLogEntries() ([]models.StudyLog, error) {
	logs := []models.StudyLog{}
	if err := s.db.Order("date asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *GormStore) SetMood(mood string) (models.MoodState, error) {
	mood = strings.ToLower(strings.TrimSpace(mood))
	if mood == "" {
		return models.MoodState{}, &models.ValidationError{Field: "mood", Reason: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.MoodState{ID: 1}
	if err := s.db.Where(models.MoodState{ID: 1}).FirstOrCreate(&state).Error; err != nil {
		return models.MoodState{}, err
	}
	state.Mood = mood
	if err := s.db.Save(&state).Error; err != nil {
		return models.MoodState{}, err
	}
	return state, nil
}

func (s *GormStore) GetMood() (string, error) {
	var state models.MoodState
	err := s.db.First(&state, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "neutral", nil
	}
	if err != nil {
		return "", err
	}
	return state.Mood, nil
}

func (s *GormStore) Snapshot() (Snapshot, error) {
	goals := []models.Goal{}
	if err := s.db.Preload("Tasks").Order("id asc").Find(&goals).Error; err != nil {
		return Snapshot{}, err
	}
	logs, err := s.GetLogEntries()
	if err != nil {
		return Snapshot{}, err
	}
	mood, err := s.GetMood()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Goals: goals, Logs: logs, Mood: mood}, nil
}
