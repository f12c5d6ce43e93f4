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

func TestTechnicalFunction_UpdateProgress(t *testing.T) {
	s := fixture()
	rc := memoryReadCache()
	tfs := usecase.NewTechnicalFunctionUseCase(tfRepo{s}, pfRepo{s}, rc)
	useCases := newUseCases(s, rc)
	ctx := context.Background()

	list, err := useCases.List(ctx, dto.UseCaseListQuery{Q: "UC1"})
	require.NoError(t, err)
	assert.Equal(t, 50, list.Items[0].Percent)

	out, err := tfs.UpdateProgress(ctx, "TF3", json.RawMessage(`"100"`))
	require.NoError(t, err)
	assert.Equal(t, &dto.ProgressUpdatedDTO{ID: "TF3", ProgressPercent: 100}, out)

	list, err = useCases.List(ctx, dto.UseCaseListQuery{Q: "UC1"})
	require.NoError(t, err)
	assert.Equal(t, dto.ProgressDTO{Percent: 83, Done: 2, Total: 3, Status: "IN_PROGRESS"}, list.Items[0].ProgressDTO,
		"el agregado se recalcula en la siguiente lectura")
}

func TestTechnicalFunction_UpdateProgressInvalido(t *testing.T) {
	s := fixture()
	uc := usecase.NewTechnicalFunctionUseCase(tfRepo{s}, pfRepo{s}, nil)

	for _, raw := range []string{`-1`, `101`, `50.5`, `"abc"`, `null`, ``} {
		_, err := uc.UpdateProgress(context.Background(), "TF1", json.RawMessage(raw))
		assert.ErrorIs(t, err, domain.ErrProgressOutOfRange, raw)
	}
	assert.Equal(t, 0, s.callCount("UpdateProgress"), "nada se persiste si el valor es inválido")
	assert.Equal(t, 100, s.tfs["TF1"].ProgressPercent)
}

func TestTechnicalFunction_UpdateProgressNoExiste(t *testing.T) {
	s := fixture()
	uc := usecase.NewTechnicalFunctionUseCase(tfRepo{s}, pfRepo{s}, nil)
	_, err := uc.UpdateProgress(context.Background(), "TF99", json.RawMessage(`10`))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTechnicalFunction_UpdateParent(t *testing.T) {
	s := fixture()
	uc := usecase.NewTechnicalFunctionUseCase(tfRepo{s}, pfRepo{s}, nil)
	ctx := context.Background()

	out, err := uc.UpdateParent(ctx, "TF4", dto.UpdateParentRequest{ProductFunctionID: dto.NullableString{Set: true, Value: strPtr("PF3")}})
	require.NoError(t, err)
	assert.Equal(t, "PF3", *out.ProductFunctionID)
	assert.Equal(t, &dto.ProductFunctionOptionDTO{ID: "PF3", Name: "Empty"}, out.ProductFunction)
	assert.Equal(t, "PF3", *s.tfs["TF4"].ProductFunctionID)

	out, err = uc.UpdateParent(ctx, "TF4", dto.UpdateParentRequest{ProductFunctionID: dto.NullableString{Set: true}})
	require.NoError(t, err)
	assert.Nil(t, out.ProductFunctionID)
	assert.Nil(t, s.tfs["TF4"].ProductFunctionID)
}

func TestTechnicalFunction_UpdateParentErrores(t *testing.T) {
	s := fixture()
	uc := usecase.NewTechnicalFunctionUseCase(tfRepo{s}, pfRepo{s}, nil)
	ctx := context.Background()

	_, err := uc.UpdateParent(ctx, "TF1", dto.UpdateParentRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "product_function_id es obligatorio")

	_, err = uc.UpdateParent(ctx, "TF1", dto.UpdateParentRequest{ProductFunctionID: dto.NullableString{Set: true, Value: strPtr("PF9")}})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	_, err = uc.UpdateParent(ctx, "TF99", dto.UpdateParentRequest{ProductFunctionID: dto.NullableString{Set: true}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
