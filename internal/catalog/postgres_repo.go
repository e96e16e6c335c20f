package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const gameColumns = "id_bg, name, description, yearpublished, minplayers, maxplayers, playingtime, minage, owned, wanting, img, users_rated, average"

// PostgresRepo implements Repository against a pgx pool.
type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner, g *Game) error {
	return row.Scan(
		&g.ID, &g.Name, &g.Description, &g.YearPublished,
		&g.MinPlayers, &g.MaxPlayers, &g.PlayingTime, &g.MinAge,
		&g.Owned, &g.Wanting, &g.ImageURL, &g.UsersRated, &g.Average,
	)
}

func collectGames(rows pgx.Rows) ([]Game, error) {
	defer rows.Close()
	var out []Game
	for rows.Next() {
		var g Game
		if err := scanGame(rows, &g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) List(ctx context.Context, limit int) ([]Game, error) {
	rows, err := r.db.Query(ctx, "SELECT "+gameColumns+" FROM board_game LIMIT $1", limit)
	if err != nil {
		return nil, err
	}
	return collectGames(rows)
}

func (r *PostgresRepo) GetDetails(ctx context.Context, id int) (*GameDetails, error) {
	var d GameDetails
	row := r.db.QueryRow(ctx, "SELECT "+gameColumns+" FROM board_game WHERE id_bg = $1", id)
	if err := scanGame(row, &d.Game); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	lookups := []struct {
		dst *[]string
		sql string
	}{
		{&d.Designers, "SELECT designer_name FROM designed_by WHERE id_bg = $1"},
		{&d.Publishers, "SELECT publisher_name FROM published_by WHERE id_bg = $1"},
		{&d.Categories, "SELECT category_name FROM is_of_category WHERE id_bg = $1"},
		{&d.Mechanics, "SELECT mechanic_name FROM uses_mechanic WHERE id_bg = $1"},
	}
	for _, l := range lookups {
		names, err := r.queryNames(ctx, l.sql, id)
		if err != nil {
			return nil, err
		}
		*l.dst = names
	}

	rows, err := r.db.Query(ctx, "SELECT id_bge, name FROM bg_expansion WHERE id_bg = $1", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	d.Expansions = []Expansion{}
	for rows.Next() {
		var e Expansion
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		d.Expansions = append(d.Expansions, e)
	}
	return &d, rows.Err()
}

func (r *PostgresRepo) queryNames(ctx context.Context, sql string, id int) ([]string, error) {
	rows, err := r.db.Query(ctx, sql, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// GetAggregatedDetails calls the get_board_game_details routine, which
// returns five refcursors in a fixed positional contract:
// [0]=game row, [1]=categories, [2]=mechanics, [3]=designers,
// [4]=publishers. The cursor count is checked before any are read so a
// reordered or trimmed contract fails loudly instead of being misread.
func (r *PostgresRepo) GetAggregatedDetails(ctx context.Context, id int) (*AggregatedDetails, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, "SELECT get_board_game_details($1)", id)
	if err != nil {
		return nil, fmt.Errorf("get_board_game_details: %w", err)
	}
	var cursors []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			rows.Close()
			return nil, err
		}
		cursors = append(cursors, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(cursors) != 5 {
		return nil, fmt.Errorf("get_board_game_details: expected 5 result sets, got %d", len(cursors))
	}

	d := &AggregatedDetails{}

	infoRows, err := tx.Query(ctx, "FETCH ALL IN "+pgx.Identifier{cursors[0]}.Sanitize())
	if err != nil {
		return nil, err
	}
	if infoRows.Next() {
		var g Game
		if err := scanGame(infoRows, &g); err != nil {
			infoRows.Close()
			return nil, err
		}
		d.Info = &g
	}
	infoRows.Close()
	if err := infoRows.Err(); err != nil {
		return nil, err
	}

	nameSets := []*[]string{&d.Categories, &d.Mechanics, &d.Designers, &d.Publishers}
	for i, dst := range nameSets {
		names, err := fetchCursorNames(ctx, tx, cursors[i+1])
		if err != nil {
			return nil, err
		}
		*dst = names
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

func fetchCursorNames(ctx context.Context, tx pgx.Tx, cursor string) ([]string, error) {
	rows, err := tx.Query(ctx, "FETCH ALL IN "+pgx.Identifier{cursor}.Sanitize())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

func (r *PostgresRepo) Search(ctx context.Context, f SearchFilter) ([]Game, error) {
	query, args := buildSearchQuery(f)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectGames(rows)
}

func (r *PostgresRepo) SearchByCategory(ctx context.Context, category string) ([]Game, error) {
	rows, err := r.db.Query(ctx, "SELECT "+gameColumns+" FROM get_games_by_category($1)", category)
	if err != nil {
		return nil, err
	}
	return collectGames(rows)
}

func (r *PostgresRepo) SearchByDesigner(ctx context.Context, designer string) ([]Game, error) {
	rows, err := r.db.Query(ctx, "SELECT "+gameColumns+" FROM get_games_by_designer($1)", designer)
	if err != nil {
		return nil, err
	}
	return collectGames(rows)
}

func (r *PostgresRepo) GetRating(ctx context.Context, id int) (int, float64, error) {
	var usersRated int
	var average float64
	err := r.db.QueryRow(ctx, "SELECT users_rated, average FROM board_game WHERE id_bg = $1", id).
		Scan(&usersRated, &average)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, ErrNotFound
		}
		return 0, 0, err
	}
	return usersRated, average, nil
}

func (r *PostgresRepo) SetRating(ctx context.Context, id, usersRated int, average float64) error {
	_, err := r.db.Exec(ctx,
		"UPDATE board_game SET users_rated = $1, average = $2 WHERE id_bg = $3",
		usersRated, average, id)
	return err
}

func (r *PostgresRepo) TopRated(ctx context.Context) ([]Game, error) {
	rows, err := r.db.Query(ctx, "SELECT "+gameColumns+" FROM top_rated_games")
	if err != nil {
		return nil, err
	}
	return collectGames(rows)
}

func (r *PostgresRepo) LookupRef(ctx context.Context, id int) (GameRef, error) {
	var ref GameRef
	err := r.db.QueryRow(ctx, "SELECT id_bg, name FROM board_game WHERE id_bg = $1", id).
		Scan(&ref.ID, &ref.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return GameRef{}, ErrNotFound
		}
		return GameRef{}, err
	}
	return ref, nil
}

// Delete removes the game and everything referencing it. Association rows
// go first, then expansions, then the game row itself; the store declares
// no cascades, so the ordering matters. All or nothing.
func (r *PostgresRepo) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	deletions := []string{
		"DELETE FROM designed_by WHERE id_bg = $1",
		"DELETE FROM published_by WHERE id_bg = $1",
		"DELETE FROM is_of_category WHERE id_bg = $1",
		"DELETE FROM uses_mechanic WHERE id_bg = $1",
		"DELETE FROM bg_expansion WHERE id_bg = $1",
		"DELETE FROM board_game WHERE id_bg = $1",
	}
	for _, sql := range deletions {
		if _, err := tx.Exec(ctx, sql, id); err != nil {
			return fmt.Errorf("delete game %d: %w", id, err)
		}
	}
	return tx.Commit(ctx)
}

type relationKind struct {
	refTable   string
	assocTable string
	nameColumn string
}

var relationKinds = []relationKind{
	{"bg_designer", "designed_by", "designer_name"},
	{"bg_publisher", "published_by", "publisher_name"},
	{"bg_category", "is_of_category", "category_name"},
	{"bg_mechanic", "uses_mechanic", "mechanic_name"},
}

func relationLists(rel Relations) [][]string {
	return [][]string{rel.Designers, rel.Publishers, rel.Categories, rel.Mechanics}
}

func ensureReference(ctx context.Context, tx pgx.Tx, table, name string) error {
	_, err := tx.Exec(ctx,
		"INSERT INTO "+table+" (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", name)
	return err
}

func linkReference(ctx context.Context, tx pgx.Tx, k relationKind, id int, name string) error {
	_, err := tx.Exec(ctx,
		"INSERT INTO "+k.assocTable+" (id_bg, "+k.nameColumn+") VALUES ($1, $2) ON CONFLICT DO NOTHING",
		id, name)
	return err
}

// Update is a full replace: every scalar column is overwritten and every
// association list is rewritten from scratch (delete all, reinsert).
func (r *PostgresRepo) Update(ctx context.Context, g Game, rel Relations) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const updateSQL = `
		UPDATE board_game
		SET name = $1, description = $2, yearpublished = $3, minplayers = $4,
			maxplayers = $5, playingtime = $6, minage = $7, owned = $8,
			wanting = $9, img = $10, users_rated = $11, average = $12
		WHERE id_bg = $13`
	_, err = tx.Exec(ctx, updateSQL,
		g.Name, g.Description, g.YearPublished, g.MinPlayers, g.MaxPlayers,
		g.PlayingTime, g.MinAge, g.Owned, g.Wanting, g.ImageURL,
		g.UsersRated, g.Average, g.ID)
	if err != nil {
		return fmt.Errorf("update board_game: %w", err)
	}

	for i, names := range relationLists(rel) {
		k := relationKinds[i]
		if _, err := tx.Exec(ctx, "DELETE FROM "+k.assocTable+" WHERE id_bg = $1", g.ID); err != nil {
			return err
		}
		for _, name := range names {
			if err := ensureReference(ctx, tx, k.refTable, name); err != nil {
				return err
			}
			if err := linkReference(ctx, tx, k, g.ID, name); err != nil {
				return err
			}
		}
	}
	return tx.Commit(ctx)
}

// Add creates the game through the add_board_game_full routine, which also
// writes the first name of each relation kind inline on the row and links
// it. Only the remaining names get explicit association rows here, so the
// first one is never double-linked.
func (r *PostgresRepo) Add(ctx context.Context, g Game, rel Relations, exp *Expansion) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i, names := range relationLists(rel) {
		for _, name := range names {
			if err := ensureReference(ctx, tx, relationKinds[i].refTable, name); err != nil {
				return err
			}
		}
	}

	_, err = tx.Exec(ctx,
		"CALL add_board_game_full($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)",
		g.ID, g.Name, g.Description, g.YearPublished,
		g.MinPlayers, g.MaxPlayers, g.PlayingTime, g.MinAge,
		g.Owned, g.Wanting, g.ImageURL, g.UsersRated, g.Average,
		nullIfEmpty(firstOrEmpty(rel.Designers)),
		nullIfEmpty(firstOrEmpty(rel.Publishers)),
		nullIfEmpty(firstOrEmpty(rel.Categories)),
		nullIfEmpty(firstOrEmpty(rel.Mechanics)))
	if err != nil {
		return fmt.Errorf("add_board_game_full: %w", err)
	}

	for i, names := range relationLists(rel) {
		if len(names) < 2 {
			continue
		}
		for _, name := range names[1:] {
			if err := linkReference(ctx, tx, relationKinds[i], g.ID, name); err != nil {
				return err
			}
		}
	}

	if exp != nil {
		_, err := tx.Exec(ctx,
			"INSERT INTO bg_expansion (id_bge, name, id_bg) VALUES ($1, $2, $3)",
			exp.ID, exp.Name, g.ID)
		if err != nil {
			return fmt.Errorf("insert expansion: %w", err)
		}
	}
	return tx.Commit(ctx)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
