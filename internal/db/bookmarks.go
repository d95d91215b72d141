package db

import (
	"github.com/rs/zerolog/log"

	"github.com/Duvar1/vakit/internal/model"
)

func CreateBookmark(userID, surah, ayah int, note *string) (model.Bookmark, error) {
	var b model.Bookmark
	const q = `
	INSERT INTO bookmarks (user_id, surah, ayah, note, created_at)
	VALUES ($1, $2, $3, $4, now())
	RETURNING id, user_id, surah, ayah, note, created_at;`
	if err := DB.Get(&b, q, userID, surah, ayah, note); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("CreateBookmark failed")
		return model.Bookmark{}, err
	}
	return b, nil
}

func ListBookmarks(userID int) ([]model.Bookmark, error) {
	var out []model.Bookmark
	const q = `
	SELECT id, user_id, surah, ayah, note, created_at
	  FROM bookmarks
	 WHERE user_id = $1
	 ORDER BY created_at DESC;`
	if err := DB.Select(&out, q, userID); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("ListBookmarks failed")
		return nil, err
	}
	return out, nil
}

// removes the bookmark only if it belongs to the user.
func DeleteBookmark(userID, bookmarkID int) error {
	_, err := DB.Exec(`DELETE FROM bookmarks WHERE id = $1 AND user_id = $2;`, bookmarkID, userID)
	if err != nil {
		log.Error().Err(err).Int("bookmark_id", bookmarkID).Msg("DeleteBookmark failed")
	}
	return err
}
