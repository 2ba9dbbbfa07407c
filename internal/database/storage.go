package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/113578/getfitwithbot/pkg/models"
)

// ErrProfileNotFound возвращается, когда пользователь ещё не прошёл анкету.
var ErrProfileNotFound = errors.New("профиль не найден")

// SaveProfile записывает профиль целиком. Upsert выполняется одним
// запросом: запись либо обновляется полностью, либо остаётся прежней.
func (db *DB) SaveProfile(p *models.Profile) error {
	_, err := db.conn.Exec(`
		INSERT INTO profiles (
			user_id, sex, weight, height, age, activity_level, city,
			calorie_goal, water_goal, logged_water, logged_calories, burned_calories
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			sex             = excluded.sex,
			weight          = excluded.weight,
			height          = excluded.height,
			age             = excluded.age,
			activity_level  = excluded.activity_level,
			city            = excluded.city,
			calorie_goal    = excluded.calorie_goal,
			water_goal      = excluded.water_goal,
			logged_water    = excluded.logged_water,
			logged_calories = excluded.logged_calories,
			burned_calories = excluded.burned_calories`,
		p.UserID, p.Sex, p.Weight, p.Height, p.Age, p.ActivityLevel, p.City,
		p.CalorieGoal, p.WaterGoal, p.LoggedWater, p.LoggedCalories, p.BurnedCalories,
	)
	if err != nil {
		return fmt.Errorf("не удалось сохранить профиль %d: %w", p.UserID, err)
	}
	return nil
}

// Profile загружает профиль пользователя или ErrProfileNotFound.
func (db *DB) Profile(userID int64) (*models.Profile, error) {
	row := db.conn.QueryRow(`
		SELECT user_id, sex, weight, height, age, activity_level, city,
		       calorie_goal, water_goal, logged_water, logged_calories, burned_calories
		FROM profiles WHERE user_id = ?`, userID)

	var p models.Profile
	err := row.Scan(
		&p.UserID, &p.Sex, &p.Weight, &p.Height, &p.Age, &p.ActivityLevel, &p.City,
		&p.CalorieGoal, &p.WaterGoal, &p.LoggedWater, &p.LoggedCalories, &p.BurnedCalories,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось загрузить профиль %d: %w", userID, err)
	}
	return &p, nil
}
