package catalog

// PageCursor 已展开的页数(从1开始)
// 只在"显示更多"时递增,只在新搜索时重置为FirstPage
type PageCursor int

// FirstPage 新搜索后的游标
const FirstPage PageCursor = 1

// Advance 游标前进一页
// 不做上限检查:Remaining为0后是否继续前进由调用方决定(界面上禁用按钮)
func (c PageCursor) Advance() PageCursor {
	return c + 1
}

// Paginator 分页器
type Paginator struct {
	pageSize int
}

// NewPaginator 创建分页器
// pageSize<=0属于配置错误,在构造时报错,切页时不再检查
func NewPaginator(pageSize int) (*Paginator, error) {
	if pageSize <= 0 {
		return nil, ErrInvalidPageSize
	}
	return &Paginator{pageSize: pageSize}, nil
}

// PageSize 每页数量
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// PageSlice 返回游标所在页的图书
// 范围为[(cursor-1)*pageSize, cursor*pageSize),超出部分截断;
// 游标越界(或小于FirstPage)时返回空切片,不报错
func (p *Paginator) PageSlice(m MatchSet, cursor PageCursor) []Book {
	if cursor < FirstPage || int(cursor) > p.TotalPages(m) {
		return []Book{}
	}
	start := (int(cursor) - 1) * p.pageSize
	end := start + min(p.pageSize, len(m)-start)
	return m[start:end:end]
}

// Remaining 游标之后还剩多少本未展开,最小为0
func (p *Paginator) Remaining(m MatchSet, cursor PageCursor) int {
	if cursor < FirstPage {
		return len(m)
	}
	if int(cursor) >= p.TotalPages(m) {
		return 0
	}
	return len(m) - int(cursor)*p.pageSize
}

// Revealed 游标之前(含)已经展开的全部图书
// 数量 = min(cursor*pageSize, len(m))
func (p *Paginator) Revealed(m MatchSet, cursor PageCursor) []Book {
	if cursor < FirstPage {
		return []Book{}
	}
	n := len(m) - p.Remaining(m, cursor)
	return m[:n:n]
}

// TotalPages 总页数(向上取整)
// 不用len+pageSize-1的写法,pageSize接近math.MaxInt时会溢出
func (p *Paginator) TotalPages(m MatchSet) int {
	if len(m) == 0 {
		return 0
	}
	return (len(m)-1)/p.pageSize + 1
}
