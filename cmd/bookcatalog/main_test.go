package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcatalog/internal/domain/catalog"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

const testConfig = `
catalog:
  source: embedded
  page_size: 4
log:
  level: error
  output: stderr
redis:
  enabled: false
`

// execute 在临时目录中用测试配置执行命令
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o644))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", path}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommands(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "browse", "search", "show", "options", "seed"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestSearchCommand(t *testing.T) {
	t.Run("按作者筛选输出JSON", func(t *testing.T) {
		out, err := execute(t, "search", "--author", "herbert", "--json")
		require.NoError(t, err)

		var res dto.BookListResponse
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "Dune", res.Items[0].Title)
		assert.Equal(t, "Children of Dune", res.Items[1].Title)
		assert.Equal(t, "Frank Herbert", res.Items[0].Author)
		assert.Equal(t, "Show more (0)", res.ShowMore.Label)
		assert.True(t, res.ShowMore.Disabled)
	})

	t.Run("第二页", func(t *testing.T) {
		out, err := execute(t, "search", "--page", "2", "--json")
		require.NoError(t, err)

		var res dto.BookListResponse
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 2, res.Page)
		assert.Equal(t, 16, res.Total)
		assert.Equal(t, 4, res.TotalPages)
		assert.Len(t, res.Items, 4)
		assert.Equal(t, 8, res.Remaining)
		assert.Equal(t, "Show more (8)", res.ShowMore.Label)
	})

	t.Run("文本输出", func(t *testing.T) {
		out, err := execute(t, "search", "--title", "DUNE")
		require.NoError(t, err)
		assert.Contains(t, out, "Dune by Frank Herbert")
		assert.Contains(t, out, "Page 1/1 · 2 books · Show more (0)")
	})

	t.Run("没有结果", func(t *testing.T) {
		out, err := execute(t, "search", "--title", "no such book")
		require.NoError(t, err)
		assert.Contains(t, out, "No results found. Your filters might be too narrow.")
	})

	t.Run("页码非法", func(t *testing.T) {
		_, err := execute(t, "search", "--page", "0")
		assert.Error(t, err)
	})

	t.Run("作者为空", func(t *testing.T) {
		_, err := execute(t, "search", "--author", "")
		assert.ErrorIs(t, err, catalog.ErrInvalidCriteria)
	})
}

func TestShowCommand(t *testing.T) {
	t.Run("图书详情", func(t *testing.T) {
		out, err := execute(t, "show", "57c3129d-d443-5a06-b76b-163e69b5ca0f", "--json")
		require.NoError(t, err)

		var res dto.BookDetailResponse
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, "Dune", res.Title)
		assert.Equal(t, "Frank Herbert (1965)", res.Subtitle)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := execute(t, "show", "nonexistent-id")
		assert.ErrorIs(t, err, catalog.ErrBookNotFound)
	})

	t.Run("缺少参数", func(t *testing.T) {
		_, err := execute(t, "show")
		assert.Error(t, err)
	})
}

func TestOptionsCommand(t *testing.T) {
	out, err := execute(t, "options", "--json")
	require.NoError(t, err)

	var res dto.OptionsResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Authors, 9)
	assert.Equal(t, catalog.Option{Value: catalog.Any, Label: catalog.AllAuthorsLabel}, res.Authors[0])
	assert.Equal(t, catalog.Option{Value: "tolkien", Label: "J.R.R. Tolkien"}, res.Authors[1])
	require.Len(t, res.Genres, 8)
	assert.Equal(t, catalog.AllGenresLabel, res.Genres[0].Label)
}

func TestProvideCatalogSource(t *testing.T) {
	ctx := context.Background()

	t.Run("内置数据集", func(t *testing.T) {
		cfg := &config.Config{Catalog: config.CatalogConfig{Source: config.SourceEmbedded, PageSize: 5}}
		source, cleanup, err := provideCatalogSource(ctx, cfg, logger.Nop())
		require.NoError(t, err)
		defer cleanup()

		c, err := provideCatalog(ctx, source, logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, 16, c.Len())
		assert.Equal(t, 5, c.PageSize())
	})

	t.Run("数据文件不存在", func(t *testing.T) {
		cfg := &config.Config{Catalog: config.CatalogConfig{Source: config.SourceFile, Path: filepath.Join(t.TempDir(), "missing.json")}}
		source, cleanup, err := provideCatalogSource(ctx, cfg, logger.Nop())
		require.NoError(t, err)
		defer cleanup()

		_, err = provideCatalog(ctx, source, logger.Nop())
		assert.Error(t, err)
	})
}

func TestSnapshotName(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.CatalogConfig
		want string
	}{
		{"内置", config.CatalogConfig{Source: config.SourceEmbedded}, "embedded"},
		{"MySQL", config.CatalogConfig{Source: config.SourceMySQL}, "mysql"},
		{"文件带路径", config.CatalogConfig{Source: config.SourceFile, Path: "data/books.yaml"}, "file:data/books.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, snapshotName(&config.Config{Catalog: tt.cfg}))
		})
	}
}

func TestIsTerminalOutput(t *testing.T) {
	assert.True(t, isTerminalOutput(""))
	assert.True(t, isTerminalOutput("stdout"))
	assert.True(t, isTerminalOutput("stderr"))
	assert.False(t, isTerminalOutput("/var/log/bookcatalog.log"))
}

func TestLoadConfig_LogFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	logPath := filepath.Join(dir, "bookcatalog.log")
	path := filepath.Join(dir, "config.yaml")
	content := "catalog:\n  source: embedded\nlog:\n  level: info\n  format: json\n  output: " + logPath + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, log, err := loadConfig(&rootFlags{configPath: path})
	require.NoError(t, err)
	log.Info("命令开始")
	closeLogger(log)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "命令开始")
	assert.NoError(t, log.Close(), "已关闭的日志器再次关闭不报错")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
