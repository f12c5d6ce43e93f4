package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/progress-api/internal/application/dto"
	"github.com/jhoicas/progress-api/internal/application/usecase"
	"github.com/jhoicas/progress-api/internal/domain"
)

func newStructure(s *memStore) *usecase.StructureUseCase {
	return usecase.NewStructureUseCase(pfRepo{s}, featureRepo{s}, nil)
}

func itemIDs(items []dto.ProductFunctionItemDTO) []string {
	ids := []string{}
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestStructure_ListProgresoPorPF(t *testing.T) {
	uc := newStructure(fixture())

	res, err := uc.List(context.Background(), dto.StructureQuery{})
	require.NoError(t, err)
	require.Equal(t, []string{"PF1", "PF2", "PF3"}, itemIDs(res.Items))

	pf1 := res.Items[0]
	assert.Equal(t, dto.ProgressDTO{Percent: 75, Done: 1, Total: 2, Status: "IN_PROGRESS"}, pf1.ProgressDTO)
	assert.Equal(t, "Motion", pf1.Feature.Name)
	assert.Equal(t, "Core", pf1.Feature.Domain.Name)
	assert.Equal(t, []string{"gait"}, pf1.Tags)
	assert.Equal(t, "TF1", pf1.TechnicalFunctions[0].ID)

	pf3 := res.Items[2]
	assert.Equal(t, dto.ProgressDTO{Percent: 0, Done: 0, Total: 0, Status: "NOT_STARTED"}, pf3.ProgressDTO, "PF vacío: 0%, 0/0")
	assert.Nil(t, pf3.Feature)
	assert.NotNil(t, pf3.Tags)
}

func TestStructure_ListFiltros(t *testing.T) {
	uc := newStructure(fixture())
	ctx := context.Background()

	cases := []struct {
		name  string
		query dto.StructureQuery
		want  []string
	}{
		{"sin iniciar", dto.StructureQuery{Status: "NOT_STARTED"}, []string{"PF2", "PF3"}},
		{"en progreso", dto.StructureQuery{Status: "IN_PROGRESS"}, []string{"PF1"}},
		{"completados", dto.StructureQuery{Status: "COMPLETED"}, []string{}},
		{"por tag", dto.StructureQuery{Q: "GAIT"}, []string{"PF1"}},
		{"por feature", dto.StructureQuery{Q: "vision"}, []string{"PF2"}},
		{"por dominio", dto.StructureQuery{Q: "body"}, []string{"PF2"}},
		{"por id de TF", dto.StructureQuery{Q: "tf3"}, []string{"PF2"}},
		{"por nombre de TF", dto.StructureQuery{Q: "balance"}, []string{"PF1"}},
		{"modo un PF ignora demás filtros", dto.StructureQuery{PF: "PF3", Status: "COMPLETED", Q: "zzz"}, []string{"PF3"}},
		{"modo un PF inexistente", dto.StructureQuery{PF: "PF9"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := uc.List(ctx, tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, itemIDs(res.Items))
			assert.Equal(t, len(tc.want), res.Meta.Total)
		})
	}
}

func TestStructure_UpdateProductFunction(t *testing.T) {
	s := fixture()
	uc := newStructure(s)
	ctx := context.Background()

	var in dto.UpdateProductFunctionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"feature_id":"F2","tags":[" a ","b","a",""]}`), &in))

	out, err := uc.UpdateProductFunction(ctx, "PF3", in)
	require.NoError(t, err)
	assert.Equal(t, "F2", *out.FeatureID)
	assert.Equal(t, []string{"a", "b"}, out.Tags)
	assert.Equal(t, "Vision", out.Feature.Name)
	assert.Equal(t, "Body", out.Feature.Domain.Name)

	// solo tags: la feature no cambia
	var tagsOnly dto.UpdateProductFunctionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"tags":[]}`), &tagsOnly))
	out, err = uc.UpdateProductFunction(ctx, "PF3", tagsOnly)
	require.NoError(t, err)
	assert.Equal(t, "F2", *out.FeatureID)
	assert.Equal(t, []string{}, out.Tags)

	// feature_id null la desvincula
	var detach dto.UpdateProductFunctionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"feature_id":null}`), &detach))
	out, err = uc.UpdateProductFunction(ctx, "PF3", detach)
	require.NoError(t, err)
	assert.Nil(t, out.FeatureID)
	assert.Nil(t, out.Feature)
}

func TestStructure_UpdateProductFunctionErrores(t *testing.T) {
	uc := newStructure(fixture())
	ctx := context.Background()

	bad := dto.UpdateProductFunctionRequest{FeatureID: dto.NullableString{Set: true, Value: strPtr("F9")}}
	_, err := uc.UpdateProductFunction(ctx, "PF1", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	_, err = uc.UpdateProductFunction(ctx, "PF9", dto.UpdateProductFunctionRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
