package historyrepo

import (
	"testing"

	"github.com/vishnuv4/students-excel/internal/adapters/contracttest"
	"github.com/vishnuv4/students-excel/internal/adapters/postgres/testutil"
	historyrepoport "github.com/vishnuv4/students-excel/internal/ports/out/historyrepo"
)

func TestContract_PostgresHistoryRepo(t *testing.T) {
	pool := testutil.OpenMigratedPool(t)

	contracttest.RunHistoryRepo(t, func(t *testing.T) (historyrepoport.Repository, func()) {
		t.Helper()
		return NewRepo(pool), nil
	})
}
