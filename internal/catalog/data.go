package catalog

// bt is a backtick, for snippets that use template literals.
const bt = "`"

// hookDocs returns the documented hooks in display order.
func hookDocs() []HookDoc {
	return []HookDoc{
		{
			Slug:        "use-reveal",
			Title:       "useReveal",
			Category:    "Animation",
			Description: "Animate any given component with satisfying reveal animations.",
			LongDescription: "useReveal wraps any content in a motion container that animates it into view once it " +
				"enters the viewport. Choose between slide, fade, scale and blur effects, pick a direction, and tune " +
				"delay and duration to build staggered entrances without hand-written intersection observers.",
			Code: `
'use client'

import { ReactNode, useRef } from 'react'
import { motion, useInView } from 'framer-motion'

type Direction = 'up' | 'down' | 'left' | 'right'
type AnimationType = 'slide' | 'fade' | 'scale' | 'blur'

interface useRevealProps {
  children: ReactNode
  type?: AnimationType
  direction?: Direction
  delay?: number
  duration?: number
  once?: boolean
  exit?: boolean
}

const useReveal: React.FC<useRevealProps> = ({
  children,
  type = 'slide',
  direction = 'up',
  delay = 0,
  duration = 0.6,
  once = true,
  exit = false,
}) => {
  const ref = useRef<HTMLDivElement>(null)
  const isInView = useInView(ref, { once, margin: '-10%' })

  const getVariants = () => {
    const base = { opacity: 0 }
    const visible = { opacity: 1 }

    switch (type) {
      case 'slide':
        return {
          hidden: {
            ...base,
            x: direction === 'left' ? -50 : direction === 'right' ? 50 : 0,
            y: direction === 'up' ? 50 : direction === 'down' ? -50 : 0,
          },
          visible: { ...visible, x: 0, y: 0 },
          exit: exit ? {
            opacity: 0,
            x: direction === 'left' ? 50 : direction === 'right' ? -50 : 0,
            y: direction === 'up' ? -50 : direction === 'down' ? 50 : 0,
          } : {},
        }

      case 'scale':
        return {
          hidden: { ...base, scale: 0.8 },
          visible: { ...visible, scale: 1 },
          exit: exit ? { opacity: 0, scale: 0.8 } : {},
        }

      case 'blur':
        return {
          hidden: { ...base, filter: 'blur(4px)' },
          visible: { ...visible, filter: 'blur(0px)' },
          exit: exit ? { opacity: 0, filter: 'blur(4px)' } : {},
        }

      default: // fade
        return {
          hidden: base,
          visible,
          exit: exit ? { opacity: 0 } : {},
        }
    }
  }

  return (
    <motion.div
      ref={ref}
      variants={getVariants()}
      initial="hidden"
      animate={isInView ? 'visible' : (exit ? 'exit' : 'hidden')}
      transition={{ duration, delay, ease: 'easeOut' }}
    >
      {children}
    </motion.div>
  )
}

export default useReveal
`,
			Usage: `function Example() {
  return (
    <div>
  <RevealAnimation type="slide" direction="up" delay={0.2}>
 <h1>Title</h1>
 </RevealAnimation>
    </div>
  );
}`,
			Params: []Param{
				{Name: "children", Type: "ReactNode", Description: "Content to animate"},
				{Name: "type", Type: "'slide' | 'fade' | 'scale' | 'blur'", Description: "Animation style (default: 'slide')"},
				{Name: "direction", Type: "'up' | 'down' | 'left' | 'right'", Description: "Slide direction (default: 'up')"},
				{Name: "delay", Type: "number", Description: "Delay in seconds before the animation starts (default: 0)"},
				{Name: "duration", Type: "number", Description: "Animation duration in seconds (default: 0.6)"},
				{Name: "once", Type: "boolean", Description: "Animate only the first time the element enters view (default: true)"},
				{Name: "exit", Type: "boolean", Description: "Play the reverse animation when leaving view (default: false)"},
			},
			Returns: Returns("JSX.Element - A motion wrapper that reveals its children"),
		},
		{
			Slug:        "use-debounce",
			Title:       "useDebounce",
			Category:    "Performance",
			Description: "Debounce a value to optimize frequent updates and function calls.",
			LongDescription: "useDebounce delays the execution of a function or value update until after the user has " +
				"stopped triggering changes for a specified duration. Perfect for search inputs, API calls, and heavy computations.",
			Code: `import { useState, useEffect } from 'react';

export function useDebounce<T>(value: T, delay: number = 500): T {
  const [debouncedValue, setDebouncedValue] = useState<T>(value);

  useEffect(() => {
    const handler = setTimeout(() => {
      setDebouncedValue(value);
    }, delay);

    return () => clearTimeout(handler);
  }, [value, delay]);

  return debouncedValue;
}`,
			Usage: `function SearchUsers() {
  const [searchTerm, setSearchTerm] = useState('');
  const debouncedSearchTerm = useDebounce(searchTerm, 300);

  useEffect(() => {
    if (debouncedSearchTerm) {
      // Perform API call
      console.log('Searching for:', debouncedSearchTerm);
    }
  }, [debouncedSearchTerm]);

  return (
    <input
      value={searchTerm}
      onChange={(e) => setSearchTerm(e.target.value)}
      placeholder="Search users..."
    />
  );
}`,
			Params: []Param{
				{Name: "value", Type: "T", Description: "The value to debounce"},
				{Name: "delay", Type: "number", Description: "Delay in milliseconds (default: 500)"},
			},
			Returns: Returns("T - The debounced value"),
		},
		{
			Slug:        "use-local-storage",
			Title:       "useLocalStorage",
			Category:    "State Management",
			Description: "Sync component state with browser localStorage automatically.",
			LongDescription: "useLocalStorage combines React state with localStorage to persist data across browser " +
				"sessions. It handles serialization, type safety, and provides easy state management with automatic persistence.",
			Code: `import { useState, useEffect } from 'react';

export function useLocalStorage<T>(
  key: string,
  initialValue: T
): [T, (value: T) => void] {
  const [storedValue, setStoredValue] = useState<T>(() => {
    try {
      const item = typeof window !== 'undefined'
        ? window.localStorage.getItem(key)
        : null;
      return item ? JSON.parse(item) : initialValue;
    } catch (error) {
      console.error(error);
      return initialValue;
    }
  });

  const setValue = (value: T) => {
    try {
      setStoredValue(value);
      if (typeof window !== 'undefined') {
        window.localStorage.setItem(key, JSON.stringify(value));
      }
    } catch (error) {
      console.error(error);
    }
  };

  return [storedValue, setValue];
}`,
			Usage: `function ThemeToggle() {
  const [theme, setTheme] = useLocalStorage<'light' | 'dark'>('theme', 'light');

  return (
    <button onClick={() => setTheme(theme === 'light' ? 'dark' : 'light')}>
      Switch to {theme === 'light' ? 'dark' : 'light'} mode
    </button>
  );
}`,
			Params: []Param{
				{Name: "key", Type: "string", Description: "localStorage key"},
				{Name: "initialValue", Type: "T", Description: "Initial value if key doesn't exist"},
			},
			Returns: Returns("[T, (value: T) => void] - Current value and setter function"),
		},
		{
			Slug:        "use-fetch",
			Title:       "useFetch",
			Category:    "Data Fetching",
			Description: "Simplified API data fetching with built-in loading and error states.",
			LongDescription: "useFetch handles the complexity of data fetching, loading states, error handling, and " +
				"caching. It's a lightweight alternative to larger data fetching libraries.",
			Code: `import { useState, useEffect } from 'react';

interface UseFetchState<T> {
  data: T | null;
  loading: boolean;
  error: Error | null;
}

export function useFetch<T>(url: string): UseFetchState<T> {
  const [state, setState] = useState<UseFetchState<T>>({
    data: null,
    loading: true,
    error: null,
  });

  useEffect(() => {
    let isMounted = true;

    const fetchData = async () => {
      try {
        const response = await fetch(url);
        if (!response.ok) throw new Error('API Error');
        const data = await response.json();

        if (isMounted) {
          setState({ data, loading: false, error: null });
        }
      } catch (error) {
        if (isMounted) {
          setState({
            data: null,
            loading: false,
            error: error instanceof Error ? error : new Error('Unknown error'),
          });
        }
      }
    };

    fetchData();
    return () => { isMounted = false; };
  }, [url]);

  return state;
}`,
			Usage: `function UserProfile({ userId }: { userId: string }) {
  const { data, loading, error } = useFetch(` + bt + `/api/users/${userId}` + bt + `);

  if (loading) return <div>Loading...</div>;
  if (error) return <div>Error: {error.message}</div>;

  return (
    <div>
      <h1>{data?.name}</h1>
      <p>{data?.bio}</p>
    </div>
  );
}`,
			Params: []Param{
				{Name: "url", Type: "string", Description: "API endpoint URL"},
			},
			Returns: Returns("UseFetchState<T> - Object with data, loading, and error properties"),
		},
		{
			Slug:        "use-previous",
			Title:       "usePrevious",
			Category:    "State Management",
			Description: "A custom hook that tracks the previous value of any prop or state variable.",
			LongDescription: "usePrevious is useful when you need to compare the current value with its previous state. " +
				"Common use cases include detecting value changes, implementing undo/redo functionality, or tracking value transitions.",
			Code: `import { useRef, useEffect } from 'react';

export function usePrevious<T>(value: T): T | undefined {
  const ref = useRef<T>();

  useEffect(() => {
    ref.current = value;
  }, [value]);

  return ref.current;
}`,
			Usage: `function Counter() {
  const [count, setCount] = useState(0);
  const prevCount = usePrevious(count);

  return (
    <div>
      <p>Now: {count}, before: {prevCount}</p>
      <button onClick={() => setCount(count + 1)}>
        Increment
      </button>
    </div>
  );
}`,
			Params: []Param{
				{Name: "value", Type: "T", Description: "Any value to track"},
			},
			Returns: Returns("T | undefined - The previous value or undefined on first render"),
		},
		{
			Slug:        "use-optimistic",
			Title:       "useOptimistic",
			Category:    "State Management",
			Description: "Provides optimistic updates for immediate UI feedback during async operations.",
			LongDescription: "useOptimistic allows you to show immediate UI updates while async operations are pending, " +
				"then reconcile with the actual result. Perfect for forms, likes, and other interactive elements where " +
				"instant feedback improves UX.",
			Code: `import { useOptimistic, useState } from 'react';

export function useOptimisticLike(initialLikes: number, userId: string) {
  const [likes, setLikes] = useState(initialLikes);
  const [optimisticLikes, setOptimisticLikes] = useOptimistic(likes);

  const toggleLike = async () => {
    const newLikes = optimisticLikes + (likes === optimisticLikes ? 1 : -1);
    setOptimisticLikes(newLikes);

    try {
      // Simulate API call
      await fetch('/api/like', {
        method: 'POST',
        body: JSON.stringify({ userId }),
      });
      setLikes(newLikes);
    } catch (error) {
      // Revert on error
      setOptimisticLikes(likes);
    }
  };

  return [optimisticLikes, toggleLike];
}`,
			Usage: `function LikeButton({ initialLikes, userId }: { initialLikes: number; userId: string }) {
  const [likes, toggleLike] = useOptimisticLike(initialLikes, userId);

  return (
    <button onClick={toggleLike}>
      ❤️ {likes} likes
    </button>
  );
}`,
			Params: []Param{
				{Name: "initialValue", Type: "T", Description: "Initial value for the state"},
			},
			Returns: Returns("[T, (updater: T | ((prev: T) => T)) => void] - Optimistic value and update function"),
		},
		{
			Slug:        "use-transition",
			Title:       "useTransition",
			Category:    "Performance",
			Description: "Manages non-blocking UI transitions and loading states.",
			LongDescription: "useTransition enables smooth UI updates by marking some updates as non-urgent transitions. " +
				"It provides a way to keep the UI responsive during heavy computations or data fetches.",
			Code: `import { useTransition, useState } from 'react';

export function useTransitionSearch<T>(data: T[], searchFn: (item: T, query: string) => boolean) {
  const [query, setQuery] = useState('');
  const [results, setResults] = useState<T[]>(data);
  const [isPending, startTransition] = useTransition();

  const handleSearch = (newQuery: string) => {
    setQuery(newQuery);
    startTransition(() => {
      const filtered = data.filter(item => searchFn(item, newQuery));
      setResults(filtered);
    });
  };

  return { query, results, isPending, handleSearch };
}`,
			Usage: `function SearchComponent({ items }: { items: Array<{ id: number; name: string }> }) {
  const { query, results, isPending, handleSearch } = useTransitionSearch(
    items,
    (item, q) => item.name.toLowerCase().includes(q.toLowerCase())
  );

  return (
    <div>
      <input
        value={query}
        onChange={(e) => handleSearch(e.target.value)}
        placeholder="Search..."
      />
      {isPending && <div>Loading...</div>}
      <ul>
        {results.map(item => <li key={item.id}>{item.name}</li>)}
      </ul>
    </div>
  );
}`,
			Params: []Param{
				{Name: "data", Type: "T[]", Description: "Array of data to search through"},
				{Name: "searchFn", Type: "(item: T, query: string) => boolean", Description: "Function to filter items"},
			},
			Returns: Returns("Object with query, results, isPending, and handleSearch"),
		},
		{
			Slug:        "use-deferred-value",
			Title:       "useDeferredValue",
			Category:    "Performance",
			Description: "Defers expensive computations to prevent blocking the UI.",
			LongDescription: "useDeferredValue allows React to defer re-rendering of expensive components until after " +
				"more urgent updates. It's useful for search inputs, large lists, and other computationally intensive UI elements.",
			Code: `import { useDeferredValue, useMemo } from 'react';

export function useDeferredSearch<T>(data: T[], query: string, filterFn: (item: T, query: string) => boolean) {
  const deferredQuery = useDeferredValue(query);

  const filteredData = useMemo(() => {
    return data.filter(item => filterFn(item, deferredQuery));
  }, [data, deferredQuery, filterFn]);

  const isStale = query !== deferredQuery;

  return { filteredData, isStale };
}`,
			Usage: `function DeferredSearchList({ items }: { items: Array<{ id: number; title: string }> }) {
  const [query, setQuery] = useState('');
  const { filteredData, isStale } = useDeferredSearch(
    items,
    query,
    (item, q) => item.title.toLowerCase().includes(q.toLowerCase())
  );

  return (
    <div>
      <input
        value={query}
        onChange={(e) => setQuery(e.target.value)}
        placeholder="Search titles..."
      />
      {isStale && <div>Updating...</div>}
      <ul>
        {filteredData.map(item => <li key={item.id}>{item.title}</li>)}
      </ul>
    </div>
  );
}`,
			Params: []Param{
				{Name: "data", Type: "T[]", Description: "Data array to filter"},
				{Name: "query", Type: "string", Description: "Search query string"},
				{Name: "filterFn", Type: "(item: T, query: string) => boolean", Description: "Filtering function"},
			},
			Returns: Returns("Object with filteredData and isStale flag"),
		},
	}
}
