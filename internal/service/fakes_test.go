package service

import (
	"sort"
	"strings"

	"github.com/renatinhocg/bruna/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes. The services only see the repository
// interfaces, so tests run against these instead of a database.

type fakeQuestionRepo struct {
	questions map[uint]model.Question
	nextID    uint
}

func newFakeQuestionRepo(questions ...model.Question) *fakeQuestionRepo {
	r := &fakeQuestionRepo{questions: make(map[uint]model.Question), nextID: 1}
	for _, q := range questions {
		if q.ID >= r.nextID {
			r.nextID = q.ID + 1
		}
		r.questions[q.ID] = q
	}
	return r
}

func (r *fakeQuestionRepo) Create(question *model.Question) error {
	question.ID = r.nextID
	r.nextID++
	r.questions[question.ID] = *question
	return nil
}

func (r *fakeQuestionRepo) Update(question *model.Question) error {
	r.questions[question.ID] = *question
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	var out []model.Question
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindActive(categoryID *uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if !q.Active {
			continue
		}
		if categoryID != nil && q.CategoryID != *categoryID {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CategoryID != out[j].CategoryID {
			return out[i].CategoryID < out[j].CategoryID
		}
		return out[i].Order < out[j].Order
	})
	return out, nil
}

func (r *fakeQuestionRepo) NextOrder(categoryID uint) (int, error) {
	next := 1
	for _, q := range r.questions {
		if q.CategoryID == categoryID && q.Order >= next {
			next = q.Order + 1
		}
	}
	return next, nil
}

type fakeOptionRepo struct {
	options map[uint]model.AnswerOption
	nextID  uint
}

func newFakeOptionRepo(options ...model.AnswerOption) *fakeOptionRepo {
	r := &fakeOptionRepo{options: make(map[uint]model.AnswerOption), nextID: 1}
	for _, o := range options {
		if o.ID >= r.nextID {
			r.nextID = o.ID + 1
		}
		r.options[o.ID] = o
	}
	return r
}

func (r *fakeOptionRepo) Create(option *model.AnswerOption) error {
	option.ID = r.nextID
	r.nextID++
	r.options[option.ID] = *option
	return nil
}

func (r *fakeOptionRepo) Update(option *model.AnswerOption) error {
	r.options[option.ID] = *option
	return nil
}

func (r *fakeOptionRepo) FindByID(id uint) (*model.AnswerOption, error) {
	o, ok := r.options[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &o, nil
}

func (r *fakeOptionRepo) FindByIDs(ids []uint) ([]model.AnswerOption, error) {
	var out []model.AnswerOption
	for _, id := range ids {
		if o, ok := r.options[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOptionRepo) FindActive() ([]model.AnswerOption, error) {
	var out []model.AnswerOption
	for _, o := range r.options {
		if o.Active {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ordinal < out[j].Ordinal })
	return out, nil
}

func (r *fakeOptionRepo) MaxActiveValue() (int, error) {
	max := 0
	for _, o := range r.options {
		if o.Active && o.Value > max {
			max = o.Value
		}
	}
	return max, nil
}

func (r *fakeOptionRepo) NextOrdinal() (int, error) {
	next := 1
	for _, o := range r.options {
		if o.Ordinal >= next {
			next = o.Ordinal + 1
		}
	}
	return next, nil
}

type fakeTestRepo struct {
	tests  map[uint]*model.IntelligenceTest
	nextID uint
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{tests: make(map[uint]*model.IntelligenceTest), nextID: 1}
}

func (r *fakeTestRepo) CreateScored(test *model.IntelligenceTest) error {
	test.ID = r.nextID
	r.nextID++
	for i := range test.Responses {
		test.Responses[i].ID = uint(i + 1)
		test.Responses[i].TestID = test.ID
	}
	for i := range test.Results {
		test.Results[i].ID = uint(i + 1)
		test.Results[i].TestID = test.ID
	}
	stored := *test
	r.tests[test.ID] = &stored
	return nil
}

func (r *fakeTestRepo) Update(test *model.IntelligenceTest) error {
	stored := *test
	r.tests[test.ID] = &stored
	return nil
}

func (r *fakeTestRepo) FindByID(id uint) (*model.IntelligenceTest, error) {
	t, ok := r.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTestRepo) FindByIDWithDetails(id uint) (*model.IntelligenceTest, error) {
	return r.FindByID(id)
}

func (r *fakeTestRepo) FindLatestAuthorizedForUser(userID uint) (*model.IntelligenceTest, error) {
	var latest *model.IntelligenceTest
	for _, t := range r.tests {
		if t.UserID == nil || *t.UserID != userID || !t.Concluded || !t.Authorized {
			continue
		}
		if latest == nil || t.CreatedAt.After(latest.CreatedAt) {
			latest = t
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeTestRepo) HasConcludedForUser(userID uint) (bool, error) {
	for _, t := range r.tests {
		if t.UserID != nil && *t.UserID == userID && t.Concluded {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeTestRepo) FindAllFiltered(userID *uint, limit, offset int) ([]model.IntelligenceTest, int64, error) {
	var all []model.IntelligenceTest
	for _, t := range r.tests {
		if userID != nil && (t.UserID == nil || *t.UserID != *userID) {
			continue
		}
		all = append(all, *t)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, total, nil
}

type fakeCategoryRepo struct {
	categories  map[uint]model.Category
	refQuestion map[uint]int64
	refResult   map[uint]int64
	nextID      uint
}

func newFakeCategoryRepo(categories ...model.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{
		categories:  make(map[uint]model.Category),
		refQuestion: make(map[uint]int64),
		refResult:   make(map[uint]int64),
		nextID:      1,
	}
	for _, c := range categories {
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(category *model.Category) error {
	category.ID = r.nextID
	r.nextID++
	r.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Update(category *model.Category) error {
	r.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) FindByID(id uint) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *fakeCategoryRepo) FindByIDWithQuestions(id uint) (*model.Category, error) {
	return r.FindByID(id)
}

func (r *fakeCategoryRepo) FindByNameInsensitive(name string) (*model.Category, error) {
	for _, c := range r.categories {
		if strings.EqualFold(c.Name, name) {
			copied := c
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) FindActiveWithQuestionCount() ([]struct {
	model.Category
	QuestionCount int
}, error) {
	var out []struct {
		model.Category
		QuestionCount int
	}
	for _, c := range r.categories {
		if !c.Active {
			continue
		}
		out = append(out, struct {
			model.Category
			QuestionCount int
		}{Category: c, QuestionCount: int(r.refQuestion[c.ID])})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) CountReferences(id uint) (int64, int64, error) {
	return r.refQuestion[id], r.refResult[id], nil
}

func (r *fakeCategoryRepo) Delete(id uint) error {
	delete(r.categories, id)
	return nil
}
