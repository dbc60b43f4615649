package postgres

const insertFavoriteSQL = `
INSERT INTO favorites (event_id, event, added_at)
VALUES ($1, $2, $3)
ON CONFLICT (event_id) DO NOTHING
`

const deleteFavoriteSQL = `
DELETE FROM favorites WHERE event_id = $1
`

const listFavoritesSQL = `
SELECT event_id, event, added_at
FROM favorites
ORDER BY added_at ASC
`

const existsFavoriteSQL = `
SELECT EXISTS(SELECT 1 FROM favorites WHERE event_id = $1)
`
