package config

// registry 按节名索引，保留插入顺序以便 dump 输出稳定
type registry[T any] struct {
	keys  []string
	items map[string]*T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{items: make(map[string]*T)}
}

// findOrCreate 命中直接返回，未命中用 create 生成并登记
func (r *registry[T]) findOrCreate(name string, create func(string) *T) (item *T, created bool) {
	if found, ok := r.items[name]; ok {
		return found, false
	}
	item = create(name)
	r.items[name] = item
	r.keys = append(r.keys, name)
	return item, true
}

func (r *registry[T]) get(name string) (*T, bool) {
	item, ok := r.items[name]
	return item, ok
}

func (r *registry[T]) len() int {
	return len(r.keys)
}

func (r *registry[T]) all() []*T {
	items := make([]*T, 0, len(r.keys))
	for _, k := range r.keys {
		items = append(items, r.items[k])
	}
	return items
}
