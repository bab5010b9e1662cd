package catalog

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/cubefs/cubefs/blobstore/common/trace"
	"github.com/cubefs/cubefs/blobstore/util/taskpool"

	"github.com/openseries/seriesdb/proto"
)

const (
	taskTypeProvisionDatabase = taskType(iota + 1)
)

const taskRetryIntervalS = 3

type (
	taskType uint8
	taskFunc func(ctx context.Context, sid proto.Sid, args []byte) error

	task struct {
		sid        proto.Sid
		typ        taskType
		args       []byte
		assignedAt time.Time
	}
)

func newTaskMgr(taskPoolNum int) *taskMgr {
	return &taskMgr{
		tasks:          make(map[proto.Sid]*task),
		taskList:       list.New(),
		taskElementMap: make(map[proto.Sid]*list.Element),
		taskPool:       taskpool.New(taskPoolNum, taskPoolNum),
		taskFuncMap:    make(map[taskType]taskFunc),
		notifyC:        make(chan struct{}),
		done:           make(chan struct{}),
	}
}

type taskMgr struct {
	tasks          map[proto.Sid]*task
	taskList       *list.List
	taskElementMap map[proto.Sid]*list.Element
	taskPool       taskpool.TaskPool
	taskFuncMap    map[taskType]taskFunc

	notifyC chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	lock    sync.RWMutex
}

func (t *taskMgr) Send(ctx context.Context, task *task) {
	t.lock.Lock()
	defer func() {
		t.lock.Unlock()
		t.notify()
	}()

	if t.tasks[task.sid] != nil {
		return
	}

	t.tasks[task.sid] = task
	e := t.taskList.PushBack(task)
	t.taskElementMap[task.sid] = e
}

func (t *taskMgr) Register(typ taskType, f taskFunc) {
	t.taskFuncMap[typ] = f
}

func (t *taskMgr) Start() {
	t.done = make(chan struct{})
	go t.run()
}

// Close stops dispatching and waits for the tasks already handed to the
// pool, the store behind them may be closed right after.
func (t *taskMgr) Close() {
	close(t.done)
	t.wg.Wait()
}

func (t *taskMgr) run() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-t.notifyC:
			for {
				t.lock.Lock()
				e := t.taskList.Front()
				if e == nil {
					t.lock.Unlock()
					break
				}
				task := e.Value.(*task)
				if time.Since(task.assignedAt) < 0 {
					t.lock.Unlock()
					break
				}
				t.taskList.Remove(e)
				delete(t.taskElementMap, task.sid)
				t.lock.Unlock()

				if !t.execute(task) {
					// pool is full, park the task and let a later tick retry it
					t.requeue(task, taskRetryIntervalS*time.Second)
					break
				}
			}
		case <-ticker.C:
			t.notify()
		case <-t.done:
			return
		}
	}
}

func (t *taskMgr) execute(task *task) bool {
	t.wg.Add(1)
	ok := t.taskPool.TryRun(func() {
		defer t.wg.Done()

		span, ctx := trace.StartSpanFromContext(context.Background(), "")
		if err := t.taskFuncMap[task.typ](ctx, task.sid, task.args); err != nil {
			span.Warnf("execute task[%+v] failed: %s", task, err)
			t.requeue(task, taskRetryIntervalS*time.Second)
			return
		}

		t.lock.Lock()
		delete(t.tasks, task.sid)
		t.lock.Unlock()

		span.Infof("execute task[%+v] success", task)
	})
	if !ok {
		t.wg.Done()
	}
	return ok
}

// requeue puts a popped task back on the list, the tasks map entry is kept
// so Send still dedups against it while the retry is pending.
func (t *taskMgr) requeue(task *task, delay time.Duration) {
	task.assignedAt = time.Now().Add(delay)

	t.lock.Lock()
	e := t.taskList.PushBack(task)
	t.taskElementMap[task.sid] = e
	t.lock.Unlock()

	t.notify()
}

func (t *taskMgr) notify() {
	select {
	case t.notifyC <- struct{}{}:
	default:
	}
}
