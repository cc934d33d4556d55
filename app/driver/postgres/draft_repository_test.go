package postgres

import (
	"context"
	"testing"
	"time"

	"content-service/app/domain"
	"content-service/app/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var draftColumns = []string{"slug", "title", "content", "created_date"}

// Helper function to create a test draft repository with mocked database
func createTestDraftRepository(t *testing.T) (*DraftRepository, pgxmock.PgxConnIface) {
	t.Helper()

	// Create mock database connection
	mockDB, err := pgxmock.NewConn()
	require.NoError(t, err)

	// Create logger
	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	// Create repository
	repo := NewDraftRepository(&stubConnector{db: mockDB}, testLogger).(*DraftRepository)

	return repo, mockDB
}

func TestDraftRepository_List(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		setupDB   func(pgxmock.PgxConnIface)
		wantErr   bool
		errorMsg  string
		wantCount int
	}{
		{
			name: "successful draft listing",
			setupDB: func(mockDB pgxmock.PgxConnIface) {
				mockDB.ExpectQuery("SELECT(.+)FROM drafts(.+)ORDER BY created_date DESC").
					WillReturnRows(
						pgxmock.NewRows(draftColumns).
							AddRow("work-in-progress", "Work in Progress", "Rough notes", now),
					)
				mockDB.ExpectClose()
			},
			wantErr:   false,
			wantCount: 1,
		},
		{
			name: "empty table returns empty slice",
			setupDB: func(mockDB pgxmock.PgxConnIface) {
				mockDB.ExpectQuery("SELECT(.+)FROM drafts(.+)ORDER BY created_date DESC").
					WillReturnRows(pgxmock.NewRows(draftColumns))
				mockDB.ExpectClose()
			},
			wantErr:   false,
			wantCount: 0,
		},
		{
			name: "database error during listing",
			setupDB: func(mockDB pgxmock.PgxConnIface) {
				mockDB.ExpectQuery("SELECT(.+)FROM drafts(.+)ORDER BY created_date DESC").
					WillReturnError(pgx.ErrTxClosed)
				mockDB.ExpectClose()
			},
			wantErr:  true,
			errorMsg: "failed to list drafts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestDraftRepository(t)

			tt.setupDB(mockDB)

			drafts, err := repo.List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, drafts)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, drafts)
				assert.Len(t, drafts, tt.wantCount)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestDraftRepository_Create(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		draft    *domain.Draft
		setupDB  func(pgxmock.PgxConnIface, *domain.Draft)
		wantErr  bool
		errorMsg string
	}{
		{
			name:  "successful draft creation",
			draft: &domain.Draft{Slug: "work-in-progress", Title: "Work in Progress", Content: "Rough notes"},
			setupDB: func(mockDB pgxmock.PgxConnIface, draft *domain.Draft) {
				mockDB.ExpectQuery("INSERT INTO drafts(.+)RETURNING").
					WithArgs(draft.Slug, draft.Title, draft.Content).
					WillReturnRows(
						pgxmock.NewRows(draftColumns).
							AddRow(draft.Slug, draft.Title, draft.Content, now),
					)
				mockDB.ExpectClose()
			},
			wantErr: false,
		},
		{
			name:  "database error during creation",
			draft: &domain.Draft{Slug: "work-in-progress", Title: "Work in Progress", Content: "Rough notes"},
			setupDB: func(mockDB pgxmock.PgxConnIface, draft *domain.Draft) {
				mockDB.ExpectQuery("INSERT INTO drafts(.+)RETURNING").
					WithArgs(draft.Slug, draft.Title, draft.Content).
					WillReturnError(pgx.ErrTxClosed)
				mockDB.ExpectClose()
			},
			wantErr:  true,
			errorMsg: "failed to create draft",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestDraftRepository(t)

			tt.setupDB(mockDB, tt.draft)

			created, err := repo.Create(context.Background(), tt.draft)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, created)
				assert.Equal(t, tt.draft.Slug, created.Slug)
				assert.False(t, created.CreatedDate.IsZero())
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestDraftRepository_Update(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		slug     string
		title    string
		content  string
		setupDB  func(pgxmock.PgxConnIface)
		wantErr  bool
		errorIs  error
		errorMsg string
	}{
		{
			name:    "successful draft update",
			slug:    "work-in-progress",
			title:   "Almost Done",
			content: "Polished notes",
			setupDB: func(mockDB pgxmock.PgxConnIface) {
				mockDB.ExpectQuery("UPDATE drafts(.+)SET title(.+)WHERE slug(.+)RETURNING").
					WithArgs("Almost Done", "Polished notes", "work-in-progress").
					WillReturnRows(
						pgxmock.NewRows(draftColumns).
							AddRow("work-in-progress", "Almost Done", "Polished notes", now),
					)
				mockDB.ExpectClose()
			},
			wantErr: false,
		},
		{
			name:    "draft not found",
			slug:    "missing-draft",
			title:   "Almost Done",
			content: "Polished notes",
			setupDB: func(mockDB pgxmock.PgxConnIface) {
				mockDB.ExpectQuery("UPDATE drafts(.+)SET title(.+)WHERE slug(.+)RETURNING").
					WithArgs("Almost Done", "Polished notes", "missing-draft").
					WillReturnError(pgx.ErrNoRows)
				mockDB.ExpectClose()
			},
			wantErr: true,
			errorIs: domain.ErrDraftNotFound,
		},
		{
			name:    "database error during update",
			slug:    "work-in-progress",
			title:   "Almost Done",
			content: "Polished notes",
			setupDB: func(mockDB pgxmock.PgxConnIface) {
				mockDB.ExpectQuery("UPDATE drafts(.+)SET title(.+)WHERE slug(.+)RETURNING").
					WithArgs("Almost Done", "Polished notes", "work-in-progress").
					WillReturnError(pgx.ErrTxClosed)
				mockDB.ExpectClose()
			},
			wantErr:  true,
			errorMsg: "failed to update draft",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestDraftRepository(t)

			tt.setupDB(mockDB)

			updated, err := repo.Update(context.Background(), tt.slug, tt.title, tt.content)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errorIs != nil {
					assert.ErrorIs(t, err, tt.errorIs)
				}
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, updated)
				assert.Equal(t, tt.slug, updated.Slug)
				assert.Equal(t, tt.title, updated.Title)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestDraftRepository_Delete(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		slug     string
		setupDB  func(pgxmock.PgxConnIface)
		wantErr  bool
		errorIs  error
		errorMsg string
	}{
		{
			name: "successful draft deletion",
			slug: "work-in-progress",
			setupDB: func(mockDB pgxmock.PgxConnIface) {
				mockDB.ExpectQuery("DELETE FROM drafts(.+)WHERE slug(.+)RETURNING").
					WithArgs("work-in-progress").
					WillReturnRows(
						pgxmock.NewRows(draftColumns).
							AddRow("work-in-progress", "Work in Progress", "Rough notes", now),
					)
				mockDB.ExpectClose()
			},
			wantErr: false,
		},
		{
			name: "draft not found",
			slug: "missing-draft",
			setupDB: func(mockDB pgxmock.PgxConnIface) {
				mockDB.ExpectQuery("DELETE FROM drafts(.+)WHERE slug(.+)RETURNING").
					WithArgs("missing-draft").
					WillReturnError(pgx.ErrNoRows)
				mockDB.ExpectClose()
			},
			wantErr: true,
			errorIs: domain.ErrDraftNotFound,
		},
		{
			name: "database error during deletion",
			slug: "work-in-progress",
			setupDB: func(mockDB pgxmock.PgxConnIface) {
				mockDB.ExpectQuery("DELETE FROM drafts(.+)WHERE slug(.+)RETURNING").
					WithArgs("work-in-progress").
					WillReturnError(pgx.ErrTxClosed)
				mockDB.ExpectClose()
			},
			wantErr:  true,
			errorMsg: "failed to delete draft",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestDraftRepository(t)

			tt.setupDB(mockDB)

			deleted, err := repo.Delete(context.Background(), tt.slug)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errorIs != nil {
					assert.ErrorIs(t, err, tt.errorIs)
				}
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
				assert.Nil(t, deleted)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, deleted)
				assert.Equal(t, tt.slug, deleted.Slug)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
