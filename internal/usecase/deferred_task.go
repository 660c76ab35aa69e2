package usecase

import (
	"context"
	"fmt"
	"time"
)

// TaskResult は遅延実行タスクの結果
type TaskResult[T any] struct {
	Value T
	Err   error
}

// StartDeferred はdelay経過後にfnを実行し、結果を1度だけ送るチャネルを返す
// delay中にctxがキャンセルされた場合、fnは実行しない
// 同時に投げられた複数のタスク間の順序は保証しない
func StartDeferred[T any](ctx context.Context, delay time.Duration, fn func() (T, error)) <-chan TaskResult[T] {
	ch := make(chan TaskResult[T], 1)
	go func() {
		defer close(ch)
		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				ch <- TaskResult[T]{Err: fmt.Errorf("処理が中断されました: %w", ctx.Err())}
				return
			}
		}
		v, err := fn()
		ch <- TaskResult[T]{Value: v, Err: err}
	}()
	return ch
}

// Await はタスクの結果を待つ。先にctxが終了した場合はその理由を返す
// ctx終了時点で結果が届いていれば、そちらを優先する
func Await[T any](ctx context.Context, ch <-chan TaskResult[T]) (T, error) {
	select {
	case r, ok := <-ch:
		return unwrapResult(r, ok)
	case <-ctx.Done():
		select {
		case r, ok := <-ch:
			return unwrapResult(r, ok)
		default:
		}
		var zero T
		return zero, fmt.Errorf("結果待ちが中断されました: %w", ctx.Err())
	}
}

func unwrapResult[T any](r TaskResult[T], ok bool) (T, error) {
	if !ok {
		var zero T
		return zero, fmt.Errorf("タスクの結果が取得できませんでした")
	}
	return r.Value, r.Err
}
