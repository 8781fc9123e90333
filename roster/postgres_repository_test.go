package roster_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighroom-backend/roster"
	"weighroom-backend/testutil"
	"weighroom-backend/utils"
)

func TestCreateAndListWrestlers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := roster.NewPostgresRepository(db)
	ctx := context.Background()
	school := testutil.CreateTestSchool(t, db, "central", "pw")

	for _, w := range []roster.NewWrestler{
		{FirstName: "Sam", LastName: "Lee", WeightClass: 132, Sex: utils.Ptr("Male")},
		{FirstName: "Ana", LastName: "Lee"},
		{FirstName: "Jo", LastName: "Adams", WeightClass: 106, Sex: utils.Ptr("Female")},
	} {
		_, err := repo.Create(ctx, school, w)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, school)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "Adams", list[0].LastName)
	assert.Equal(t, "Ana", list[1].FirstName)
	assert.Equal(t, "Sam", list[2].FirstName)
	assert.Equal(t, 0, list[1].WeightClass)
	assert.Nil(t, list[1].Sex)
	assert.Equal(t, "Sam Lee", list[2].FullName())
}

func TestListWrestlersIsolatedPerSchool(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := roster.NewPostgresRepository(db)
	ctx := context.Background()

	central := testutil.CreateTestSchool(t, db, "central", "pw")
	west := testutil.CreateTestSchool(t, db, "west", "pw")
	testutil.CreateTestWrestler(t, db, central, "Sam", "Lee", 132, "Male")
	testutil.CreateTestWrestler(t, db, west, "Kim", "Park", 120, "Female")

	list, err := repo.List(ctx, west)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Kim", list[0].FirstName)

	empty := testutil.CreateTestSchool(t, db, "empty", "pw")
	list, err = repo.List(ctx, empty)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestUpdateWrestlerPartial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := roster.NewPostgresRepository(db)
	ctx := context.Background()
	school := testutil.CreateTestSchool(t, db, "central", "pw")
	id := testutil.CreateTestWrestler(t, db, school, "Sam", "Lee", 132, "Male")

	updated, err := repo.Update(ctx, school, id, roster.WrestlerPatch{WeightClass: utils.Ptr(138)})
	require.NoError(t, err)
	assert.Equal(t, 138, updated.WeightClass)
	assert.Equal(t, "Sam", updated.FirstName)
	assert.Equal(t, "Lee", updated.LastName)
	require.NotNil(t, updated.Sex)
	assert.Equal(t, "Male", *updated.Sex)

	updated, err = repo.Update(ctx, school, id, roster.WrestlerPatch{FirstName: utils.Ptr("Samuel")})
	require.NoError(t, err)
	assert.Equal(t, "Samuel", updated.FirstName)
	assert.Equal(t, 138, updated.WeightClass)
}

func TestUpdateWrestlerOtherSchool(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := roster.NewPostgresRepository(db)
	ctx := context.Background()

	central := testutil.CreateTestSchool(t, db, "central", "pw")
	west := testutil.CreateTestSchool(t, db, "west", "pw")
	id := testutil.CreateTestWrestler(t, db, central, "Sam", "Lee", 132, "Male")

	_, err := repo.Update(ctx, west, id, roster.WrestlerPatch{FirstName: utils.Ptr("Mallory")})
	assert.ErrorIs(t, err, roster.ErrNotFound)

	list, err := repo.List(ctx, central)
	require.NoError(t, err)
	assert.Equal(t, "Sam", list[0].FirstName)
}

func TestDeleteWrestlerRemovesWeights(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := roster.NewPostgresRepository(db)
	ctx := context.Background()

	school := testutil.CreateTestSchool(t, db, "central", "pw")
	sam := testutil.CreateTestWrestler(t, db, school, "Sam", "Lee", 132, "Male")
	kim := testutil.CreateTestWrestler(t, db, school, "Kim", "Park", 120, "Female")
	testutil.CreateTestWeight(t, db, sam, testutil.Date(2025, 1, 2), 135.4, "before")
	testutil.CreateTestWeight(t, db, sam, testutil.Date(2025, 1, 2), 133.0, "after")
	testutil.CreateTestWeight(t, db, kim, testutil.Date(2025, 1, 2), 121.0, "before")

	require.NoError(t, repo.Delete(ctx, school, sam))

	assert.Equal(t, 0, testutil.Count(t, db, `SELECT COUNT(*) FROM weights WHERE wrestler_id = $1`, sam))
	assert.Equal(t, 0, testutil.Count(t, db, `SELECT COUNT(*) FROM wrestlers WHERE id = $1`, sam))
	assert.Equal(t, 1, testutil.Count(t, db, `SELECT COUNT(*) FROM weights WHERE wrestler_id = $1`, kim))

	assert.ErrorIs(t, repo.Delete(ctx, school, sam), roster.ErrNotFound)
}

func TestDeleteWrestlerOtherSchoolKeepsData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := roster.NewPostgresRepository(db)
	ctx := context.Background()

	central := testutil.CreateTestSchool(t, db, "central", "pw")
	west := testutil.CreateTestSchool(t, db, "west", "pw")
	sam := testutil.CreateTestWrestler(t, db, central, "Sam", "Lee", 132, "Male")
	testutil.CreateTestWeight(t, db, sam, testutil.Date(2025, 1, 2), 135.4, "before")

	assert.ErrorIs(t, repo.Delete(ctx, west, sam), roster.ErrNotFound)
	assert.Equal(t, 1, testutil.Count(t, db, `SELECT COUNT(*) FROM weights WHERE wrestler_id = $1`, sam))
	assert.Equal(t, 1, testutil.Count(t, db, `SELECT COUNT(*) FROM wrestlers WHERE id = $1`, sam))
}

func TestCreateManyInsertsBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := roster.NewPostgresRepository(db)
	ctx := context.Background()
	school := testutil.CreateTestSchool(t, db, "central", "pw")

	n, err := repo.CreateMany(ctx, school, []roster.NewWrestler{
		{FirstName: "Sam", LastName: "Lee", WeightClass: 132},
		{FirstName: "Kim", LastName: "Park", Sex: utils.Ptr("Female")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, testutil.Count(t, db, `SELECT COUNT(*) FROM wrestlers WHERE school_id = $1`, school))
}

func TestCreateManyRollsBackOnFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := roster.NewPostgresRepository(db)
	ctx := context.Background()

	// Unknown school violates the foreign key on the first insert.
	_, err := repo.CreateMany(ctx, 9999, []roster.NewWrestler{
		{FirstName: "Sam", LastName: "Lee"},
	})
	assert.Error(t, err)
	assert.Equal(t, 0, testutil.Count(t, db, `SELECT COUNT(*) FROM wrestlers`))
}
