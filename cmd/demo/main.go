// Command demo exercises every container and logs what it observes after each step.
package main

import (
	"errors"
	"fmt"
	"os"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Heaps"
	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Queues"
	"github.com/g-m-twostay/go-containers/Stacks"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type config struct {
	level    string
	capacity int
	dev      bool
}

func parseFlags(args []string) (config, error) {
	var c config
	fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	fs.StringVar(&c.level, "log-level", "info", "log level: debug, info, warn or error")
	fs.IntVar(&c.capacity, "capacity", Lists.DefaultCapacity, "initial capacity of the array list")
	fs.BoolVar(&c.dev, "dev", false, "human readable console logs")
	return c, fs.Parse(args)
}

func newLogger(c config) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(c.level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if c.dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	return cfg.Build()
}

func main() {
	c, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := newLogger(c)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(c, logger.Sugar()); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(c config, log *zap.SugaredLogger) error {
	al, err := Lists.NewArrayListCap[int](c.capacity)
	if err != nil {
		return fmt.Errorf("creating array list: %w", err)
	}
	if err := demoList(log.With("container", "ArrayList"), al); err != nil {
		return err
	}
	if err := demoList(log.With("container", "LinkedList"), Lists.NewLinkedList[int]()); err != nil {
		return err
	}
	if err := demoStack(log.With("container", "Stack")); err != nil {
		return err
	}
	if err := demoQueue(log.With("container", "Queue")); err != nil {
		return err
	}
	return demoHeap(log.With("container", "MinHeap"))
}

func demoList(log *zap.SugaredLogger, l Lists.List[int]) error {
	for _, v := range []int{5, 2, 8, 1} {
		l.Add(v)
	}
	log.Infow("after adding elements", "list", l)

	if err := l.Insert(1, 10); err != nil {
		return err
	}
	log.Infow("after adding 10 at index 1", "list", l)

	l.AddFirst(99)
	l.AddLast(100)
	log.Infow("after adding 99 at first and 100 at last", "list", l)

	at2, err := l.Get(2)
	if err != nil {
		return err
	}
	first, err := l.GetFirst()
	if err != nil {
		return err
	}
	last, err := l.GetLast()
	if err != nil {
		return err
	}
	log.Infow("accessed", "index2", at2, "first", first, "last", last)

	if err := l.Set(3, 77); err != nil {
		return err
	}
	log.Infow("after setting index 3 to 77", "list", l)

	if _, err := l.Remove(2); err != nil {
		return err
	}
	log.Infow("after removing element at index 2", "list", l)

	if _, err := l.RemoveFirst(); err != nil {
		return err
	}
	if _, err := l.RemoveLast(); err != nil {
		return err
	}
	log.Infow("after removing first and last elements", "list", l)

	l.Add(5)
	l.Add(5)
	log.Infow("after adding two 5s", "list", l, "indexOf5", Lists.IndexOf(l, 5), "lastIndexOf5", Lists.LastIndexOf(l, 5))
	log.Infow("membership", "exists77", Lists.Exists(l, 77), "exists999", Lists.Exists(l, 999))

	Lists.Sort(l)
	log.Infow("after sorting", "list", l)

	_, err = l.Get(l.Size())
	log.Debugw("out of range access", "error", err, "isIndexOutOfRange", errors.Is(err, Go_Containers.ErrIndexOutOfRange))

	log.Infow("before clear", "size", l.Size())
	l.Clear()
	log.Infow("after clear", "size", l.Size(), "list", l)
	return nil
}

func demoStack(log *zap.SugaredLogger) error {
	s := Stacks.New[int]()
	for _, v := range []int{10, 20, 30, 40} {
		s.Push(v)
	}
	log.Infow("after pushing elements", "topToBottom", s)

	top, err := s.Peek()
	if err != nil {
		return err
	}
	log.Infow("top element", "peek", top)

	popped, err := s.Pop()
	if err != nil {
		return err
	}
	log.Infow("after popping", "popped", popped, "topToBottom", s)
	log.Infow("state", "empty", s.Empty(), "size", s.Size())

	s.Clear()
	log.Infow("after clear", "empty", s.Empty(), "size", s.Size())
	_, err = s.Pop()
	log.Debugw("pop on empty stack", "error", err)
	return nil
}

func demoQueue(log *zap.SugaredLogger) error {
	q := Queues.NewLinkedQueue[int]()
	for _, v := range []int{10, 20, 30, 40} {
		q.Enqueue(v)
	}
	log.Infow("after enqueuing elements", "frontToRear", q)

	front, err := q.Peek()
	if err != nil {
		return err
	}
	log.Infow("front element", "peek", front)

	dequeued, err := q.Dequeue()
	if err != nil {
		return err
	}
	log.Infow("after dequeuing", "dequeued", dequeued, "frontToRear", q)
	log.Infow("state", "empty", q.Empty(), "size", q.Size())

	q.Clear()
	log.Infow("after clear", "empty", q.Empty(), "size", q.Size())
	return nil
}

func demoHeap(log *zap.SugaredLogger) error {
	h := Heaps.New[int]()
	for _, v := range []int{30, 10, 20, 5, 15} {
		h.Insert(v)
	}
	m, err := h.Peek()
	if err != nil {
		return err
	}
	log.Infow("minimum element", "peek", m, "storage", h)

	var extracted []int
	for !h.Empty() {
		v, err := h.ExtractMin()
		if err != nil {
			return err
		}
		extracted = append(extracted, v)
	}
	log.Infow("elements extracted in order", "extracted", extracted, "empty", h.Empty())

	for _, v := range []int{8, 12, 3, 17} {
		h.Insert(v)
	}
	log.Infow("after inserting more elements", "size", h.Size())

	h.Clear()
	log.Infow("after clear", "empty", h.Empty())
	return nil
}
