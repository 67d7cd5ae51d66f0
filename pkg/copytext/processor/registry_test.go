package processor

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/copytext-go/pkg/copytext/models"
)

func TestDefaultRegistry_Builtins(t *testing.T) {
	r := NewDefaultRegistry(nil)
	assert.Equal(t, []string{"keyvalue", "objectlist", "table"}, r.Names())

	kv, err := r.Get(KeyValueName)
	require.NoError(t, err)
	assert.IsType(t, KeyValue{}, kv)

	table, err := r.Get(TableName)
	require.NoError(t, err)
	legacy, err := r.Get(ObjectListName)
	require.NoError(t, err)
	assert.Equal(t, table, legacy)
}

func TestRegistry_Unknown(t *testing.T) {
	r := NewRegistry()

	p, err := r.Get("does-not-exist")
	assert.Nil(t, p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProcessor))

	var unknown *UnknownProcessorError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "does-not-exist", unknown.Name)
	assert.Equal(t, "`does-not-exist` is not a valid sheet processor", err.Error())
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewDefaultRegistry(nil)
	r.RegisterFunc(KeyValueName, func(*models.Sheet) (any, error) { return "custom", nil })
	assert.True(t, r.Has(KeyValueName))

	p, err := r.Get(KeyValueName)
	require.NoError(t, err)
	got, err := p.Process(models.NewSheet("S"))
	require.NoError(t, err)
	assert.Equal(t, "custom", got)
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	r := NewDefaultRegistry(nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Get(TableName)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
